package pretty

import "fmt"

// FormatConversion formats one converted file as "source -> output".
// Outputs that were already current are marked as unchanged.
func (s *Styles) FormatConversion(source, output string, written, backedUp bool) string {
	line := s.FilePath.Render(source) + s.Arrow.Render(" -> ") + s.Output.Render(output)
	if !written {
		line += s.Dim.Render(" (unchanged)")
	}
	if backedUp {
		line += s.Dim.Render(" (backup saved)")
	}
	return line + "\n"
}

// FormatFileError formats a file that could not be converted.
func (s *Styles) FormatFileError(source string, err error) string {
	return fmt.Sprintf("%s: %s\n",
		s.FilePath.Render(source),
		s.Error.Render(fmt.Sprintf("error: %v", err)),
	)
}

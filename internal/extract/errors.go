package extract

import "fmt"

// UnsupportedFormatError indicates the uploaded file is not one of the
// supported resume formats (PDF, DOCX, LaTeX source).
type UnsupportedFormatError struct {
	Filename string
	MimeType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (mime: %s)", e.Filename, e.MimeType)
}

// ParseError indicates the extraction library rejected the file content.
type ParseError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

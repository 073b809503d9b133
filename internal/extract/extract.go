// Package extract converts uploaded resume files (PDF, DOCX, LaTeX source)
// into plain text. PDF and DOCX extraction delegate to external libraries;
// LaTeX is a best-effort textual transform.
package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// FileType identifies a supported resume file format.
type FileType string

// Supported file types.
const (
	TypePDF     FileType = "pdf"
	TypeDOCX    FileType = "docx"
	TypeLaTeX   FileType = "latex"
	TypeUnknown FileType = "unknown"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DetectFileType determines the file format from the filename extension,
// falling back to the declared MIME type for PDF and DOCX. No content
// sniffing is performed.
func DetectFileType(filename, mimeType string) FileType {
	name := strings.ToLower(filename)
	ext := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		ext = name[idx+1:]
	}

	switch {
	case ext == "pdf" || mimeType == mimePDF:
		return TypePDF
	case ext == "docx" || mimeType == mimeDOCX:
		return TypeDOCX
	case ext == "tex" || ext == "latex":
		return TypeLaTeX
	default:
		return TypeUnknown
	}
}

// Resume extracts plain text from an uploaded resume file.
// Returns UnsupportedFormatError when the format is not recognized and
// ParseError when the extraction library rejects the content.
func Resume(data []byte, filename, mimeType string) (string, error) {
	switch DetectFileType(filename, mimeType) {
	case TypePDF:
		return extractPDF(data)
	case TypeDOCX:
		return extractDOCX(data)
	case TypeLaTeX:
		return ParseLaTeX(string(data)), nil
	default:
		return "", &UnsupportedFormatError{Filename: filename, MimeType: mimeType}
	}
}

// extractPDF extracts text from PDF bytes, concatenating pages with newline
// separators. Library: github.com/ledongthuc/pdf.
func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "PDF", Message: "failed to read PDF", Cause: err}
	}

	var sb strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ParseError{Format: "PDF", Message: "failed to extract page text", Cause: err}
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// extractDOCX extracts text from DOCX bytes.
// Library: github.com/nguyenthenguyen/docx.
func extractDOCX(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "DOCX", Message: "failed to read DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

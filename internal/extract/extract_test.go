package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mimeType string
		expected FileType
	}{
		{"pdf extension", "resume.pdf", "", TypePDF},
		{"pdf extension uppercase", "Resume.PDF", "", TypePDF},
		{"docx extension", "resume.docx", "", TypeDOCX},
		{"tex extension", "resume.tex", "", TypeLaTeX},
		{"latex extension", "resume.latex", "", TypeLaTeX},
		{"pdf by mime", "resume.bin", "application/pdf", TypePDF},
		{"docx by mime", "resume.bin", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", TypeDOCX},
		{"no latex mime fallback", "resume.bin", "application/x-tex", TypeUnknown},
		{"unknown", "resume.txt", "text/plain", TypeUnknown},
		{"no extension", "resume", "", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFileType(tt.filename, tt.mimeType))
		})
	}
}

func TestResume_UnsupportedFormat(t *testing.T) {
	_, err := Resume([]byte("plain text"), "resume.txt", "text/plain")
	require.Error(t, err)

	var unsupportedErr *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, "resume.txt", unsupportedErr.Filename)
}

func TestResume_MalformedPDF(t *testing.T) {
	_, err := Resume([]byte("definitely not a pdf"), "resume.pdf", "application/pdf")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "PDF", parseErr.Format)
	assert.Error(t, parseErr.Unwrap())
}

func TestResume_MalformedDOCX(t *testing.T) {
	_, err := Resume([]byte("not a zip archive"), "resume.docx", "")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "DOCX", parseErr.Format)
}

func TestResume_LaTeX(t *testing.T) {
	text, err := Resume([]byte(`\section{Skills}\resumeItem{Go}`), "resume.tex", "")
	require.NoError(t, err)
	assert.Contains(t, text, "Skills")
	assert.Contains(t, text, "• Go")
}

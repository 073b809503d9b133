package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParseResumeLaTeX(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.tex")
	output := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(input, []byte("\\section{Experience}\n\\resumeItem{Built a pipeline processing 1M records/day}"), 0644))

	parseResumeInput = input
	parseResumeOutput = output
	t.Cleanup(func() { parseResumeInput, parseResumeOutput = "", "" })

	require.NoError(t, runParseResume(parseResumeCmd, nil))

	text, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Experience")
	assert.Contains(t, string(text), "1M records/day")
}

func TestRunParseResumeUnsupported(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(input, []byte("plain text"), 0644))

	parseResumeInput = input
	parseResumeOutput = ""
	t.Cleanup(func() { parseResumeInput = "" })

	err := runParseResume(parseResumeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extract resume text")
}

func TestRunParseResumeMissingFile(t *testing.T) {
	parseResumeInput = "/nonexistent/resume.pdf"
	parseResumeOutput = ""
	t.Cleanup(func() { parseResumeInput = "" })

	err := runParseResume(parseResumeCmd, nil)
	require.Error(t, err)
}

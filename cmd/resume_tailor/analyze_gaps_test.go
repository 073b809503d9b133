package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJobContext_PlainText(t *testing.T) {
	path := writeTempFile(t, "job.txt", "We need a Go engineer.")

	jobText, title, company, err := loadJobContext(path, "Engineer", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "We need a Go engineer.", jobText)
	assert.Equal(t, "Engineer", title)
	assert.Equal(t, "Acme", company)
}

func TestLoadJobContext_PostingJSON(t *testing.T) {
	path := writeTempFile(t, "job.json", `{
		"title": "Staff Engineer",
		"company": "Initech",
		"description": "Own the platform.",
		"rawText": "raw page text"
	}`)

	jobText, title, company, err := loadJobContext(path, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Own the platform.", jobText)
	assert.Equal(t, "Staff Engineer", title)
	assert.Equal(t, "Initech", company)
}

func TestLoadJobContext_PostingFallsBackToRawText(t *testing.T) {
	// Scraped postings without structured extraction carry only raw page
	// text; that text must reach the analyzer.
	path := writeTempFile(t, "job.json", `{"title": "Engineer", "company": "Acme", "rawText": "raw page text"}`)

	jobText, _, _, err := loadJobContext(path, "", "")
	require.NoError(t, err)
	assert.Equal(t, "raw page text", jobText)
}

func TestLoadJobContext_FlagsWinOverPosting(t *testing.T) {
	path := writeTempFile(t, "job.json", `{"title": "Scraped Title", "company": "Scraped Co", "description": "d", "rawText": "r"}`)

	_, title, company, err := loadJobContext(path, "Flag Title", "Flag Co")
	require.NoError(t, err)
	assert.Equal(t, "Flag Title", title)
	assert.Equal(t, "Flag Co", company)
}

func TestLoadJobContext_MissingFile(t *testing.T) {
	_, _, _, err := loadJobContext(filepath.Join(t.TempDir(), "absent.json"), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job file")
}

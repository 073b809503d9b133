package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`
			<html><body>
				<h1>Senior Go Engineer</h1>
				<div class="company-header">Acme Corp</div>
				<main>Build and operate backend services in Go.</main>
			</body></html>`))
	}))
	defer server.Close()

	posting, err := Job(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", posting.Title)
	assert.Equal(t, "Acme Corp", posting.Company)
	assert.Contains(t, posting.Description, "backend services in Go")
	assert.NotEmpty(t, posting.RawText)
}

func TestJob_PartialOptionsStillSendUserAgent(t *testing.T) {
	// Callers that set only a timeout must not end up with the User-Agent
	// header dropped from the request.
	var userAgent string
	var headerPresent bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, headerPresent = r.Header["User-Agent"]
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Engineer</h1><main>Build things.</main></body></html>`))
	}))
	defer server.Close()

	_, err := Job(context.Background(), server.URL, &Options{Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.True(t, headerPresent)
	assert.Contains(t, userAgent, "Mozilla/5.0")
}

func TestJob_InvalidURL(t *testing.T) {
	_, err := Job(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var invalidErr *InvalidURLError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestJob_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := Job(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}

func TestExtractJob_RemovesNoiseElements(t *testing.T) {
	html := `
	<html><body>
		<script>var tracking = true;</script>
		<style>.hidden { display: none; }</style>
		<nav>Site navigation</nav>
		<header>Site header</header>
		<h1>Backend Engineer</h1>
		<main>Work on distributed systems.</main>
		<footer>Copyright</footer>
	</body></html>`

	posting, err := ExtractJob("https://example.com/jobs/1", html)
	require.NoError(t, err)
	assert.NotContains(t, posting.RawText, "tracking")
	assert.NotContains(t, posting.RawText, "Site navigation")
	assert.NotContains(t, posting.RawText, "Copyright")
	assert.Contains(t, posting.RawText, "distributed systems")
}

func TestExtractJob_LinkedInWithoutSelectorsFallsBackToDefaults(t *testing.T) {
	// A LinkedIn URL whose HTML lacks every LinkedIn-specific selector must
	// still return non-empty defaults rather than failing.
	html := `<html><body><div>Some unrelated page</div></body></html>`

	posting, err := ExtractJob("https://www.linkedin.com/jobs/view/123", html)
	require.NoError(t, err)
	assert.Equal(t, "Job Position", posting.Title)
	assert.Equal(t, "Company", posting.Company)
	assert.NotEmpty(t, posting.Description)
}

func TestExtractJob_LinkedInSelectors(t *testing.T) {
	html := `
	<html><body>
		<h1 class="t-24">Staff Engineer</h1>
		<div class="topcard__org-name-link">LinkedIn Inc</div>
		<div class="description__text">Own the data platform roadmap.</div>
	</body></html>`

	posting, err := ExtractJob("https://www.linkedin.com/jobs/view/456", html)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", posting.Title)
	assert.Equal(t, "LinkedIn Inc", posting.Company)
	assert.Equal(t, "Own the data platform roadmap.", posting.Description)
}

func TestExtractJob_GreenhouseSelectors(t *testing.T) {
	html := `
	<html><body>
		<h1 class="app-title">Platform Engineer</h1>
		<div class="company-name">Greenhouse Customer</div>
		<div id="content">Run the deployment platform.</div>
	</body></html>`

	posting, err := ExtractJob("https://boards.greenhouse.io/acme/jobs/1", html)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", posting.Title)
	assert.Equal(t, "Greenhouse Customer", posting.Company)
	assert.Equal(t, "Run the deployment platform.", posting.Description)
}

func TestExtractJob_LeverSelectors(t *testing.T) {
	html := `
	<html><body>
		<div class="posting-headline"><h2>SRE</h2></div>
		<div data-qa="company-name">Lever Customer</div>
		<div data-qa="job-description">Keep the lights on.</div>
	</body></html>`

	posting, err := ExtractJob("https://jobs.lever.co/acme/1", html)
	require.NoError(t, err)
	assert.Equal(t, "SRE", posting.Title)
	assert.Equal(t, "Lever Customer", posting.Company)
	assert.Equal(t, "Keep the lights on.", posting.Description)
}

func TestExtractJob_ClassifiesListItems(t *testing.T) {
	html := `
	<html><body>
		<h1>Engineer</h1>
		<ul>
			<li>5+ years of experience with Go required</li>
			<li>You will design and operate microservices</li>
			<li>Short</li>
			<li>Snacks in the office and a foosball table for breaks</li>
		</ul>
	</body></html>`

	posting, err := ExtractJob("https://example.com/jobs/2", html)
	require.NoError(t, err)
	require.Len(t, posting.Requirements, 1)
	assert.Contains(t, posting.Requirements[0], "experience with Go")
	require.Len(t, posting.Responsibilities, 1)
	assert.Contains(t, posting.Responsibilities[0], "design and operate")
}

func TestExtractJob_ListItemBucketsCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body><ul>")
	for i := 0; i < 30; i++ {
		sb.WriteString("<li>Experience with distributed systems is required here</li>")
	}
	sb.WriteString("</ul></body></html>")

	posting, err := ExtractJob("https://example.com/jobs/3", sb.String())
	require.NoError(t, err)
	assert.Len(t, posting.Requirements, 20)
}

func TestExtractJob_RawTextCollapsedAndTruncated(t *testing.T) {
	html := "<html><body><p>" + strings.Repeat("word      ", 3000) + "</p></body></html>"

	posting, err := ExtractJob("https://example.com/jobs/4", html)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(posting.RawText), 10000)
	assert.NotContains(t, posting.RawText, "  ")
}

func TestExtractJob_DescriptionFallsBackToRawText(t *testing.T) {
	html := `<html><body><p>Only a paragraph, no content containers here.</p></body></html>`

	posting, err := ExtractJob("https://example.com/jobs/5", html)
	require.NoError(t, err)
	assert.Equal(t, posting.RawText, posting.Description)
}

func TestFindAdapter(t *testing.T) {
	tests := []struct {
		host     string
		expected string
	}{
		{"www.linkedin.com", "linkedin"},
		{"indeed.com", "indeed"},
		{"boards.greenhouse.io", "greenhouse"},
		{"jobs.lever.co", "lever"},
		{"careers.example.com", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindAdapter(tt.host).Name())
		})
	}
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("tiny page"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("content ", 100)))
}

package scrape

import (
	"context"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// maxRawTextLen caps the raw fallback text extracted from the page.
	maxRawTextLen = 10000
	// maxListItems caps each of the requirement/responsibility buckets.
	maxListItems = 20

	// defaultTitle and defaultCompany are used when extraction yields nothing.
	defaultTitle   = "Job Position"
	defaultCompany = "Company"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// requirement/responsibility classification keywords, matched on lowercased
// list-item text.
var (
	requirementMarkers    = []string{"require", "must have", "qualification", "experience with"}
	responsibilityMarkers = []string{"responsib", "will ", "you will", "duties"}
)

// Job fetches a job posting URL and extracts structured fields.
// Returns InvalidURLError for malformed URLs and FetchError for network
// failures or non-success HTTP statuses.
func Job(ctx context.Context, urlStr string, opts *Options) (*types.JobPosting, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	html, err := fetchHTML(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	posting, err := ExtractJob(urlStr, html)
	if err != nil {
		return nil, err
	}

	// JavaScript-heavy pages often serve a near-empty shell over plain HTTP.
	// Re-fetch through a headless browser when enabled and the first pass
	// came back too thin.
	if opts.UseBrowser && ShouldUseBrowser(posting.RawText) {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		rendered, browserErr := WithBrowser(ctx, urlStr, timeout)
		if browserErr != nil {
			log.Printf("[scrape] browser fallback failed for %s: %v", urlStr, browserErr)
			return posting, nil
		}
		if rerendered, rerr := ExtractJob(urlStr, rendered); rerr == nil {
			return rerendered, nil
		}
	}

	return posting, nil
}

// ExtractJob parses job posting HTML and extracts structured fields using the
// site adapter matched by the URL host.
func ExtractJob(urlStr, html string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}

	// Strip non-content markup before any text extraction.
	doc.Find("script, style, nav, footer, header").Remove()

	host := ""
	if parsed, perr := url.Parse(urlStr); perr == nil {
		host = parsed.Host
	}
	adapter := FindAdapter(host)

	title, company, description := adapter.Extract(doc)
	requirements, responsibilities := classifyListItems(doc)

	rawText := collapseWhitespace(doc.Find("body").Text())
	if runes := []rune(rawText); len(runes) > maxRawTextLen {
		rawText = string(runes[:maxRawTextLen])
	}

	posting := &types.JobPosting{
		Title:            strings.TrimSpace(title),
		Company:          strings.TrimSpace(company),
		Description:      strings.TrimSpace(description),
		Requirements:     requirements,
		Responsibilities: responsibilities,
		RawText:          rawText,
	}

	if posting.Title == "" {
		posting.Title = defaultTitle
	}
	if posting.Company == "" {
		posting.Company = defaultCompany
	}
	if posting.Description == "" {
		posting.Description = rawText
	}

	return posting, nil
}

// classifyListItems scans every list item and buckets it as a requirement or
// a responsibility based on keyword markers. Only items with text length
// strictly between 10 and 500 characters are considered; each bucket keeps at
// most maxListItems entries in first-encountered order.
func classifyListItems(doc *goquery.Document) (requirements, responsibilities []string) {
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) <= 10 || len(text) >= 500 {
			return
		}

		lower := strings.ToLower(text)
		if containsAny(lower, requirementMarkers) {
			if len(requirements) < maxListItems {
				requirements = append(requirements, text)
			}
		} else if containsAny(lower, responsibilityMarkers) {
			if len(responsibilities) < maxListItems {
				responsibilities = append(responsibilities, text)
			}
		}
	})
	return requirements, responsibilities
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// collapseWhitespace replaces consecutive whitespace with single spaces.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

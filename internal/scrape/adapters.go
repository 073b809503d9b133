package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Adapter is a site-specific extraction strategy for a job board. Adapters
// are matched by substring on the URL host; the registry falls through to a
// generic adapter when no host matches.
type Adapter interface {
	// Name identifies the adapter for logging.
	Name() string
	// Match reports whether this adapter handles the given host.
	Match(host string) bool
	// Extract pulls title, company, and description from the document.
	// Empty strings are allowed; the caller applies defaults and fallbacks.
	Extract(doc *goquery.Document) (title, company, description string)
}

// registry lists adapters in match order; the generic adapter matches
// everything and must stay last.
var registry = []Adapter{
	linkedinAdapter{},
	indeedAdapter{},
	greenhouseAdapter{},
	leverAdapter{},
	genericAdapter{},
}

// FindAdapter returns the first adapter matching the host.
func FindAdapter(host string) Adapter {
	host = strings.ToLower(host)
	for _, a := range registry {
		if a.Match(host) {
			return a
		}
	}
	return genericAdapter{}
}

// firstText returns the trimmed text of the first non-empty selector match.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

type linkedinAdapter struct{}

func (linkedinAdapter) Name() string { return "linkedin" }

func (linkedinAdapter) Match(host string) bool {
	return strings.Contains(host, "linkedin.com")
}

func (linkedinAdapter) Extract(doc *goquery.Document) (string, string, string) {
	title := firstText(doc,
		".job-details-jobs-unified-top-card__job-title",
		"h1.t-24",
		"h1",
	)
	company := firstText(doc,
		".job-details-jobs-unified-top-card__company-name",
		".topcard__org-name-link",
	)
	description := firstText(doc,
		".jobs-description__content",
		".description__text",
	)
	return title, company, description
}

type indeedAdapter struct{}

func (indeedAdapter) Name() string { return "indeed" }

func (indeedAdapter) Match(host string) bool {
	return strings.Contains(host, "indeed.com")
}

func (indeedAdapter) Extract(doc *goquery.Document) (string, string, string) {
	title := firstText(doc,
		"h1.jobsearch-JobInfoHeader-title",
		"[data-testid='jobsearch-JobInfoHeader-title']",
	)
	company := firstText(doc,
		"[data-testid='inlineHeader-companyName']",
		".jobsearch-InlineCompanyRating-companyHeader",
	)
	description := firstText(doc, "#jobDescriptionText")
	return title, company, description
}

type greenhouseAdapter struct{}

func (greenhouseAdapter) Name() string { return "greenhouse" }

func (greenhouseAdapter) Match(host string) bool {
	return strings.Contains(host, "greenhouse.io")
}

func (greenhouseAdapter) Extract(doc *goquery.Document) (string, string, string) {
	title := firstText(doc, "h1.app-title", ".job-title")
	company := firstText(doc, ".company-name")
	description := firstText(doc, "#content")
	return title, company, description
}

type leverAdapter struct{}

func (leverAdapter) Name() string { return "lever" }

func (leverAdapter) Match(host string) bool {
	return strings.Contains(host, "lever.co")
}

func (leverAdapter) Extract(doc *goquery.Document) (string, string, string) {
	title := firstText(doc, "h2.posting-headline", ".posting-headline h2")
	company := firstText(doc, "[data-qa='company-name']")
	description := firstText(doc, "[data-qa='job-description']", ".posting-page")
	return title, company, description
}

type genericAdapter struct{}

func (genericAdapter) Name() string { return "generic" }

func (genericAdapter) Match(string) bool { return true }

func (genericAdapter) Extract(doc *goquery.Document) (string, string, string) {
	title := firstText(doc, "h1", "[class*='title']")
	company := firstText(doc, "[class*='company']")

	description := ""
	main := doc.Find("main, article, [role='main'], .content, #content").First()
	if main.Length() > 0 {
		description = strings.TrimSpace(main.Text())
	} else {
		description = strings.TrimSpace(doc.Find("body").Text())
	}
	return title, company, description
}

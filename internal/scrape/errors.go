package scrape

import "fmt"

// InvalidURLError indicates the supplied job posting URL could not be parsed.
type InvalidURLError struct {
	URL   string
	Cause error
}

func (e *InvalidURLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid URL %q: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("invalid URL %q", e.URL)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Cause
}

// FetchError indicates the job posting could not be retrieved: a network
// failure or a non-success HTTP status.
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

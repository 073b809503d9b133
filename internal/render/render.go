// Package render serializes tailored resume sections into a downloadable
// PDF. The document is laid out as an HTML template and printed to PDF by
// a headless browser.
package render

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// DocumentTitle and DocumentByline form the fixed header of every
	// rendered document.
	DocumentTitle  = "Tailored Resume"
	DocumentByline = "Generated with Resume Tailor"

	// DefaultTimeout bounds a single print-to-PDF run.
	DefaultTimeout = 60 * time.Second
)

const documentHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1a1a1a; margin: 48px 56px; }
  h1 { font-size: 22px; margin: 0 0 2px 0; }
  .byline { font-size: 9px; color: #777; margin-bottom: 28px; }
  h2 { font-size: 13px; text-transform: uppercase; letter-spacing: 0.5px;
       border-bottom: 1px solid #1a1a1a; padding-bottom: 3px; margin: 20px 0 8px 0; }
  .bullet { font-size: 11px; line-height: 1.45; margin: 3px 0 3px 14px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="byline">{{.Byline}}</div>
{{- range .Sections}}
<h2>{{.Title}}</h2>
{{- range .TailoredBullets}}
<div class="bullet">&bull; {{.}}</div>
{{- end}}
{{- end}}
</body>
</html>
`

var documentTemplate = template.Must(template.New("document").Parse(documentHTML))

type documentData struct {
	Title    string
	Byline   string
	Sections []types.Section
}

// HTML renders the document markup for the given sections. Only the
// tailored bullets appear; the originals stay on screen for comparison
// but never reach the document. An empty section list yields a valid
// header-only document.
func HTML(sections []types.Section) (string, error) {
	var out strings.Builder
	data := documentData{
		Title:    DocumentTitle,
		Byline:   DocumentByline,
		Sections: sections,
	}
	if err := documentTemplate.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return out.String(), nil
}

// PDF renders the sections to PDF bytes using a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func PDF(ctx context.Context, sections []types.Section, timeout time.Duration) ([]byte, error) {
	html, err := HTML(sections)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(false).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "failed to print document", Cause: err}
	}

	return pdf, nil
}

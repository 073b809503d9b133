package extract

import (
	"regexp"
	"strings"
)

// The LaTeX transform is an ordered sequence of regex substitutions, not a
// LaTeX parser. Captures are single-level: nested braces inside one {...}
// group are not handled. This is a known limitation of the approach.
var (
	latexComment      = regexp.MustCompile(`(?m)%.*$`)
	latexDocumentcls  = regexp.MustCompile(`\\documentclass\{[^}]*\}`)
	latexUsepackage   = regexp.MustCompile(`\\usepackage(\[[^\]]*\])?\{[^}]*\}`)
	latexBeginDoc     = regexp.MustCompile(`\\begin\{document\}`)
	latexEndDoc       = regexp.MustCompile(`\\end\{document\}`)
	latexSection      = regexp.MustCompile(`\\section\*?\{([^}]*)\}`)
	latexSubsection   = regexp.MustCompile(`\\subsection\*?\{([^}]*)\}`)
	latexSubsubsec    = regexp.MustCompile(`\\subsubsection\*?\{([^}]*)\}`)
	latexTextbf       = regexp.MustCompile(`\\textbf\{([^}]*)\}`)
	latexTextit       = regexp.MustCompile(`\\textit\{([^}]*)\}`)
	latexEmph         = regexp.MustCompile(`\\emph\{([^}]*)\}`)
	latexUnderline    = regexp.MustCompile(`\\underline\{([^}]*)\}`)
	latexHref         = regexp.MustCompile(`\\href\{[^}]*\}\{([^}]*)\}`)
	latexURL          = regexp.MustCompile(`\\url\{([^}]*)\}`)
	latexBeginItemize = regexp.MustCompile(`\\begin\{itemize\}`)
	latexEndItemize   = regexp.MustCompile(`\\end\{itemize\}`)
	latexBeginEnum    = regexp.MustCompile(`\\begin\{enumerate\}`)
	latexEndEnum      = regexp.MustCompile(`\\end\{enumerate\}`)
	latexItem         = regexp.MustCompile(`\\item\s*`)
	latexResumeItem   = regexp.MustCompile(`\\resumeItem\{([^}]*)\}`)
	latexResumeSubhd  = regexp.MustCompile(`\\resumeSubheading\{([^}]*)\}\{([^}]*)\}\{([^}]*)\}\{([^}]*)\}`)
	latexResumeProj   = regexp.MustCompile(`\\resumeProjectHeading\{([^}]*)\}\{([^}]*)\}`)
	latexCommand      = regexp.MustCompile(`\\[a-zA-Z]+\*?(\[[^\]]*\])?(\{[^}]*\})?`)
	latexSpecialChars = regexp.MustCompile(`[{}\\]`)
	latexBlankLines   = regexp.MustCompile(`\n{3,}`)
)

// ParseLaTeX converts LaTeX resume source into a plain-text approximation.
// Running it on already-clean plain text is a no-op.
func ParseLaTeX(content string) string {
	text := latexComment.ReplaceAllString(content, "")

	// Preamble
	text = latexDocumentcls.ReplaceAllString(text, "")
	text = latexUsepackage.ReplaceAllString(text, "")
	text = latexBeginDoc.ReplaceAllString(text, "")
	text = latexEndDoc.ReplaceAllString(text, "")

	// Section titles
	text = latexSection.ReplaceAllString(text, "\n\n$1\n")
	text = latexSubsection.ReplaceAllString(text, "\n$1\n")
	text = latexSubsubsec.ReplaceAllString(text, "\n$1\n")

	// Text formatting
	text = latexTextbf.ReplaceAllString(text, "$1")
	text = latexTextit.ReplaceAllString(text, "$1")
	text = latexEmph.ReplaceAllString(text, "$1")
	text = latexUnderline.ReplaceAllString(text, "$1")

	// Links
	text = latexHref.ReplaceAllString(text, "$1")
	text = latexURL.ReplaceAllString(text, "$1")

	// Lists
	text = latexBeginItemize.ReplaceAllString(text, "")
	text = latexEndItemize.ReplaceAllString(text, "")
	text = latexBeginEnum.ReplaceAllString(text, "")
	text = latexEndEnum.ReplaceAllString(text, "")
	text = latexItem.ReplaceAllString(text, "• ")

	// Resume-specific macros
	text = latexResumeItem.ReplaceAllString(text, "• $1")
	text = latexResumeSubhd.ReplaceAllString(text, "$1 - $3\n$2, $4")
	text = latexResumeProj.ReplaceAllString(text, "$1 - $2")

	// Any remaining command tokens
	text = latexCommand.ReplaceAllString(text, "")

	// Stray braces and backslashes
	text = latexSpecialChars.ReplaceAllString(text, "")

	// Whitespace cleanup
	text = latexBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

package export

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled patterns for markup stripping. A rendered chat export is
// regular enough that tag stripping plus block-element line breaks
// recovers the same line-oriented text a browser would show.
var (
	scriptTag      = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag       = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag    = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag        = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag         = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments   = regexp.MustCompile(`(?s)<!--.*?-->`)
	openBlockTags  = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	closeBlockTags = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	brTags         = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	allTags        = regexp.MustCompile(`<[^>]+>`)
	multiSpaces    = regexp.MustCompile(`[ \t]+`)
)

// VisibleText strips markup from an HTML document and returns the
// rendered text, one trimmed line per visual line. Blank lines are
// preserved so boundary heuristics can see paragraph gaps.
func VisibleText(doc string) string {
	s := scriptTag.ReplaceAllString(doc, "")
	s = styleTag.ReplaceAllString(s, "")
	s = noscriptTag.ReplaceAllString(s, "")
	s = headTag.ReplaceAllString(s, "")
	s = svgTag.ReplaceAllString(s, "")
	s = htmlComments.ReplaceAllString(s, "")

	s = openBlockTags.ReplaceAllString(s, "\n")
	s = closeBlockTags.ReplaceAllString(s, "\n")
	s = brTags.ReplaceAllString(s, "\n")
	s = allTags.ReplaceAllString(s, "")

	s = html.UnescapeString(s)
	s = multiSpaces.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

package markdown

import (
	"regexp"
	"strings"
)

var (
	atxTitleRe    = regexp.MustCompile(`^#[ \t]+(?P<title>[^ \t].*)(?:\r?\n|$)`)
	setextTitleRe = regexp.MustCompile(`^(?P<title>.*)\r?\n=+(?:\r?\n|$)`)
	atxSuffixRe   = regexp.MustCompile(`\s*(?:\{#*[\w-]+\}|#+)$`)
	setextTailRe  = regexp.MustCompile(`\s*=+$`)
	inlineCodeRe  = regexp.MustCompile("`(?P<text>[^`]*)`")
	importLineRe  = regexp.MustCompile(`^import\s`)
)

// ParseContentTitle finds an h1 title (ATX or setext) at the top of the
// markdown body, skipping any leading import blocks. With removeTitle the
// matched heading is stripped from the returned content.
func ParseContentTitle(contentUntrimmed string, removeTitle bool) (string, string) {
	content := strings.TrimSpace(contentUntrimmed)
	withoutImports := strings.TrimSpace(stripLeadingImports(content))

	match := atxTitleRe.FindStringSubmatch(withoutImports)
	setext := false
	if match == nil {
		match = setextTitleRe.FindStringSubmatch(withoutImports)
		setext = true
	}
	if match == nil {
		return content, ""
	}

	newContent := content
	if removeTitle {
		newContent = strings.TrimSpace(strings.Replace(content, match[0], "", 1))
	}

	title := strings.TrimSpace(match[1])
	if setext {
		title = setextTailRe.ReplaceAllString(title, "")
	} else {
		title = atxSuffixRe.ReplaceAllString(title, "")
	}
	title = inlineCodeRe.ReplaceAllString(title, "$text")

	return newContent, strings.TrimSpace(title)
}

// stripLeadingImports removes top-of-file MDX import blocks: paragraphs that
// start with an import statement and end at a blank line.
func stripLeadingImports(content string) string {
	rest := content
	for {
		if !importLineRe.MatchString(rest) {
			return rest
		}
		idx := blankLineIndex(rest)
		if idx == -1 {
			// An import block not followed by a blank line keeps the
			// content as is.
			return rest
		}
		next := rest[idx:]
		next = strings.TrimLeft(next, "\r\n")
		rest = next
	}
}

// blankLineIndex returns the offset of the first blank-line separator, or -1.
func blankLineIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		j := i + 1
		if j < len(s) && s[j] == '\r' {
			j++
		}
		if j < len(s) && s[j] == '\n' {
			return i
		}
	}
	return -1
}

package markdown

import (
	"regexp"
	"strings"
)

var (
	leadingSetextRe = regexp.MustCompile(`^[^\r\n]*\r?\n=+`)
	importExportRe  = regexp.MustCompile(`^(?:import|export)\s`)
	codeFenceRe     = regexp.MustCompile("^`+")

	htmlTagRe       = regexp.MustCompile(`<[^>]*>`)
	titleHeaderRe   = regexp.MustCompile(`^#[^#]+#?`)
	atxHeaderRe     = regexp.MustCompile(`^#{1,6}\s*(?P<text>[^#]*?)\s*#{0,6}`)
	strikethroughRe = regexp.MustCompile(`~~(?P<text>\S.*\S)~~`)
	imageRe         = regexp.MustCompile(`!\[(?P<alt>.*?)\][[(].*?[\])]`)
	footnoteRe      = regexp.MustCompile(`\[\^.+?\](?:: .*$)?`)
	linkRe          = regexp.MustCompile(`\[(?P<alt>.*?)\][[(].*?[\])]`)
	codeSpanRe      = regexp.MustCompile("`(?P<text>.+?)`")
	blockquoteRe    = regexp.MustCompile(`^\s{0,3}>\s?`)
	admonitionRe    = regexp.MustCompile(`:::.*`)
	emojiRe         = regexp.MustCompile(`\s?:(?:::|[^:\n])+:`)
	headingIDRe     = regexp.MustCompile(`\{#*[\w-]+\}`)

	// Emphasis markers expanded per delimiter: backreferences are not
	// available, so each balanced pair gets its own pattern, longest first.
	emphasisRes = []*regexp.Regexp{
		regexp.MustCompile(`\*\*\*(?P<text>.*?)\*\*\*`),
		regexp.MustCompile(`___(?P<text>.*?)___`),
		regexp.MustCompile(`\*\*(?P<text>.*?)\*\*`),
		regexp.MustCompile(`__(?P<text>.*?)__`),
		regexp.MustCompile(`\*(?P<text>.*?)\*`),
		regexp.MustCompile(`_(?P<text>.*?)_`),
	}
)

// CreateExcerpt returns the first contentful line of a markdown body with
// most markdown syntax stripped. Headings, import/export declarations and
// code blocks are skipped entirely.
func CreateExcerpt(content string) string {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	trimmed = leadingSetextRe.ReplaceAllString(trimmed, "")
	lines := splitLines(trimmed)

	inCode := false
	inImport := false
	lastCodeFence := ""

	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		if stripped == "" && inImport {
			inImport = false
		}
		if stripped == "" {
			continue
		}
		if (importExportRe.MatchString(line) || inImport) && !inCode {
			inImport = true
			continue
		}
		if strings.HasPrefix(stripped, "```") {
			codeFence := codeFenceRe.FindString(stripped)
			if !inCode {
				inCode = true
				lastCodeFence = codeFence
			} else if len(codeFence) >= len(lastCodeFence) {
				inCode = false
			}
			continue
		}
		if inCode {
			continue
		}

		if cleaned := cleanExcerptLine(line); cleaned != "" {
			return cleaned
		}
	}

	return ""
}

func cleanExcerptLine(line string) string {
	s := htmlTagRe.ReplaceAllString(line, "")
	s = titleHeaderRe.ReplaceAllString(s, "")
	s = atxHeaderRe.ReplaceAllString(s, "$text")
	for _, re := range emphasisRes {
		s = re.ReplaceAllString(s, "$text")
	}
	s = strikethroughRe.ReplaceAllString(s, "$text")
	s = imageRe.ReplaceAllString(s, "$alt")
	s = footnoteRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllString(s, "$alt")
	s = codeSpanRe.ReplaceAllString(s, "$text")
	s = blockquoteRe.ReplaceAllString(s, "")
	s = admonitionRe.ReplaceAllString(s, "")
	s = emojiRe.ReplaceAllString(s, "")
	s = replaceFirst(headingIDRe, s, "")
	return strings.TrimSpace(s)
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

package slides

import (
	"regexp"
	"strings"
)

// Slide is one parsed block of a slide-deck outline.
type Slide struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

const FallbackTitle = "Slide sem título"

// minBlockLen filters out split artifacts (stray whitespace between
// delimiters).
const minBlockLen = 10

var (
	delimiterRe = regexp.MustCompile(`(?i)--- SLIDE \d+ ---`)
	titleRe     = regexp.MustCompile(`(?i)TÍTULO:\s*(.*)`)
	bodyRe      = regexp.MustCompile(`(?is)CONTEÚDO:\s*(.*)`)
)

// Parse splits a multi-slide model reply into ordered Slide records.
// Parsing is best-effort: input without any delimiter becomes a single
// slide with the fallback title, and blocks missing TÍTULO/CONTEÚDO lines
// fall back to placeholder/whole-block. The slide count is whatever the
// model produced; no padding or truncation happens here.
func Parse(raw string) []Slide {
	blocks := delimiterRe.Split(raw, -1)

	var out []Slide
	for _, block := range blocks {
		if len(strings.TrimSpace(block)) <= minBlockLen {
			continue
		}
		out = append(out, parseBlock(block))
	}

	if out == nil && !delimiterRe.MatchString(raw) && strings.TrimSpace(raw) != "" {
		// Delimiter absent entirely: the whole reply becomes one slide.
		out = []Slide{{Title: FallbackTitle, Body: strings.TrimSpace(raw)}}
	}
	return out
}

func parseBlock(block string) Slide {
	title := FallbackTitle
	if m := titleRe.FindStringSubmatch(block); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			title = t
		}
	}

	body := strings.TrimSpace(block)
	if m := bodyRe.FindStringSubmatch(block); m != nil {
		body = strings.TrimSpace(m[1])
	}

	return Slide{Title: title, Body: body}
}

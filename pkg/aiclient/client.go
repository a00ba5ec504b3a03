package aiclient

import (
	"context"
	"fmt"
	"strings"
)

// FilePayload is an already-decoded upload forwarded to the model as an
// inline part.
type FilePayload struct {
	MimeType string
	Data     []byte
}

// Citation is one grounding source returned by the model when web search
// was requested.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type TextRequest struct {
	SystemInstruction string
	Prompt            string
	File              *FilePayload
	WebSearch         bool
}

type TextResult struct {
	Text      string
	Citations []Citation
}

type ImageRequest struct {
	Prompt      string
	AspectRatio string
}

type ImageResult struct {
	MimeType string
	Data     []byte
}

// TextGenerator is the boundary the services depend on; the Gemini
// implementation lives in gemini.go and tests swap in fakes.
type TextGenerator interface {
	GenerateText(ctx context.Context, req *TextRequest) (*TextResult, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, req *ImageRequest) (*ImageResult, error)
}

// AppendSources attaches a labeled sources section to the generated text,
// one markdown link line per citation. No citations -> text unchanged (an
// empty header is never emitted).
func AppendSources(text, header string, citations []Citation) string {
	if len(citations) == 0 {
		return text
	}
	var links strings.Builder
	for _, c := range citations {
		links.WriteString(fmt.Sprintf("\n- [%s](%s)", c.Title, c.URI))
	}
	return text + "\n\n" + header + links.String()
}

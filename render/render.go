package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/mailshare/classify"
)

const Defaultformat = "tsv"

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"tsv", "json", "text"}
}

// Renderer writes a classification report.
type Renderer interface {
	Render(w io.Writer, report classify.Report) error
}

// New returns the renderer of format. sentences are the classified input
// texts, used by the text format.
func New(format string, withScore bool, sentences []string) (Renderer, error) {
	switch format {
	case "tsv":
		return &TSVRenderer{WithScore: withScore}, nil
	case "json":
		return NewJSONRenderer(), nil
	case "text":
		return &TextRenderer{HasColor: true, HasPrefix: true, WithScore: withScore, Sentences: sentences}, nil
	}

	return nil, fmt.Errorf("unknown format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// Score formats a score with at least one decimal ("1.0", "0.3").
func Score(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// TextRenderer writes one human readable line per result.
type TextRenderer struct {
	HasColor bool

	HasPrefix bool

	WithScore bool

	// Sentences are the input texts, indexed like the report.
	Sentences []string
}

func (r *TextRenderer) Render(w io.Writer, report classify.Report) error {
	if !report.Relevant() {
		_, err := fmt.Fprintln(w, classify.NoRelevantText)
		return err
	}

	for _, res := range report.Results {
		if _, err := fmt.Fprintln(w, r.Line(res)); err != nil {
			return err
		}
	}

	return nil
}

// Line renders a single result.
func (r *TextRenderer) Line(res classify.Result) string {
	var sb strings.Builder

	if r.HasPrefix {
		sb.WriteString(r.color(Grey256, fmt.Sprintf("[%4d] ", res.Index+1)))
	}

	c := Yellow256
	if res.Label == classify.LabelAsking {
		c = Green256
	}
	sb.WriteString(r.color(c, res.Label))

	if r.WithScore {
		fmt.Fprintf(&sb, " (%.2f)", res.Score)
	}

	if res.Index >= 0 && res.Index < len(r.Sentences) {
		sb.WriteString(" ✍  ")
		sb.WriteString(strings.TrimSpace(r.Sentences[res.Index]))
	}

	return sb.String()
}

func (r *TextRenderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

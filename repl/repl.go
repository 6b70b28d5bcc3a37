// Package repl classifies sentences typed at an interactive prompt.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/mailshare/classify"
	"github.com/revelaction/mailshare/render"
	"github.com/revelaction/mailshare/tagger"
)

const (
	// commandPrefix is the Character in the prompt that prefixes a command
	commandPrefix = "/"

	cmdWeights = "/weights"
	cmdUniform = "/uniform"
	cmdQuit    = "/quit"
	cmdHelp    = "/help"
)

var commands = []prompt.Suggest{
	{Text: cmdWeights, Description: "weighted score, e.g. /weights 0.5 0.3 0.2"},
	{Text: cmdUniform, Description: "mean of the three signals"},
	{Text: cmdHelp, Description: "show the commands"},
	{Text: cmdQuit, Description: "leave"},
}

var errUnknownCommand = errors.New("unknown command")

type Handler struct {
	tagger     tagger.Tagger
	opts       []classify.Option
	classifier *classify.Classifier

	Renderer *render.TextRenderer
	Out      io.Writer
}

// NewHandler builds a session classifying with t. opts are passed to every
// classifier the session creates.
func NewHandler(t tagger.Tagger, r *render.TextRenderer, out io.Writer, opts ...classify.Option) *Handler {
	return &Handler{
		tagger:     t,
		opts:       opts,
		classifier: classify.New(t, opts...),
		Renderer:   r,
		Out:        out,
	}
}

// Aggregator returns the aggregator of the session.
func (h *Handler) Aggregator() classify.Aggregator {
	return h.classifier.Aggregator()
}

func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprintf(h.Out, "✉  type a sentence, %s to leave. Scoring: %s\n", cmdQuit, h.Aggregator().Name())

	history := []string{}

	for {
		in := prompt.Input("      ✉  ", completer,
			prompt.OptionTitle("mailshare"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		history = append(history, in)

		quit, err := h.Eval(ctx, in)
		if err != nil {
			fmt.Fprintf(h.Out, "error: %v\n", err)
		}

		if quit {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Eval handles one line of input. quit is true when the session must end.
func (h *Handler) Eval(ctx context.Context, in string) (quit bool, err error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return false, nil
	}

	if strings.HasPrefix(in, commandPrefix) {
		return h.command(in)
	}

	res, ok, err := h.classifier.ClassifyOne(ctx, in)
	if err != nil {
		return false, err
	}

	if !ok {
		fmt.Fprintln(h.Out, classify.NoRelevantText)
		return false, nil
	}

	h.Renderer.Sentences = nil
	fmt.Fprintln(h.Out, h.Renderer.Line(res))
	return false, nil
}

func (h *Handler) command(in string) (bool, error) {
	fields := strings.Fields(in)

	switch fields[0] {
	case cmdQuit:
		return true, nil

	case cmdHelp:
		for _, c := range commands {
			fmt.Fprintf(h.Out, "%-10s %s\n", c.Text, c.Description)
		}

	case cmdUniform:
		h.setAggregator(classify.Uniform())

	case cmdWeights:
		w, err := parseWeights(fields[1:])
		if err != nil {
			return false, err
		}
		h.setAggregator(classify.Weighted(w))

	default:
		return false, fmt.Errorf("%w %q", errUnknownCommand, fields[0])
	}

	return false, nil
}

func (h *Handler) setAggregator(a classify.Aggregator) {
	opts := append(h.opts[:len(h.opts):len(h.opts)], classify.WithAggregator(a))
	h.classifier = classify.New(h.tagger, opts...)
	fmt.Fprintf(h.Out, "Scoring set to %s\n", a.Name())
}

// parseWeights accepts the three weights as separate arguments or as a
// single comma separated one.
func parseWeights(args []string) (classify.Weights, error) {
	var parts []string
	for _, a := range args {
		for _, p := range strings.Split(a, ",") {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}

	return classify.ParseWeights(strings.Join(parts, ","))
}

func completer(in prompt.Document) []prompt.Suggest {
	befCursor := in.TextBeforeCursor()

	if !strings.HasPrefix(befCursor, commandPrefix) || strings.Contains(befCursor, " ") {
		return []prompt.Suggest{}
	}

	return prompt.FilterHasPrefix(commands, befCursor, false)
}

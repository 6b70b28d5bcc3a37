package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/revelaction/mailshare/classify"
	"github.com/revelaction/mailshare/config"
	"github.com/revelaction/mailshare/render"
)

// badArgument is printed, with exit status 0, when a text file can not be
// read or classified.
const badArgument = "The argument provided is not in string (text) format or a valid path to a text (.txt) file."

func classifyCommand(ctx context.Context, opts ClassifyOptions, arg string, ui UI) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	if err := applyClassifyOptions(cfg, opts); err != nil {
		return err
	}

	log, err := newLogger(cfg, ui)
	if err != nil {
		return err
	}
	defer log.Sync()

	c, err := newClassifier(cfg, nil, log)
	if err != nil {
		return err
	}

	lines, isFile, err := readLines(arg)
	if !isFile {
		return classifySentence(ctx, c, cfg, arg, ui)
	}

	if err != nil {
		log.Warn("failed to read input file", zap.String("path", arg), zap.Error(err))
		fmt.Fprintln(ui.Out, badArgument)
		return nil
	}

	report, err := c.Classify(ctx, lines)
	if err != nil {
		log.Warn("failed to classify input file", zap.String("path", arg), zap.Error(err))
		fmt.Fprintln(ui.Out, badArgument)
		return nil
	}

	if !report.Relevant() {
		fmt.Fprintln(ui.Out, classify.NoRelevantText)
		return nil
	}

	r, err := newFileRenderer(cfg, lines)
	if err != nil {
		return err
	}

	// rendered in memory first so that no partial file is left behind
	var buf bytes.Buffer
	if err := r.Render(&buf, report); err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "✍  %d of %d sentences classified, written to %s\n", len(report.Results), report.Total, cfg.Output.Path)
	return nil
}

func classifySentence(ctx context.Context, c *classify.Classifier, cfg *config.Config, sentence string, ui UI) error {
	res, ok, err := c.ClassifyOne(ctx, sentence)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Fprintln(ui.Out, classify.NoRelevantText)
		return nil
	}

	if cfg.Output.Format == "tsv" {
		if cfg.Output.Scores {
			fmt.Fprintf(ui.Out, "%s\t%s\n", res.Label, render.Score(res.Score))
		} else {
			fmt.Fprintln(ui.Out, res.Label)
		}
		return nil
	}

	r, err := render.New(cfg.Output.Format, cfg.Output.Scores, []string{sentence})
	if err != nil {
		return err
	}

	return r.Render(ui.Out, classify.Report{Total: 1, Results: []classify.Result{res}})
}

func newFileRenderer(cfg *config.Config, lines []string) (render.Renderer, error) {
	r, err := render.New(cfg.Output.Format, cfg.Output.Scores, lines)
	if err != nil {
		return nil, err
	}

	if tr, ok := r.(*render.TextRenderer); ok {
		tr.HasColor = false
	}

	return r, nil
}

// applyClassifyOptions sets the flags given on the command line over the
// configuration.
func applyClassifyOptions(cfg *config.Config, opts ClassifyOptions) error {
	if opts.set["o"] {
		cfg.Output.Path = opts.Output
	}

	if opts.set["format"] {
		cfg.Output.Format = opts.Format
	}

	if opts.NoScore {
		cfg.Output.Scores = false
	}

	if opts.Uniform {
		cfg.Scoring.Uniform = true
	}

	if opts.Weights != "" {
		w, err := classify.ParseWeights(opts.Weights)
		if err != nil {
			return err
		}
		cfg.Scoring.Weights = w[:]
		cfg.Scoring.Uniform = false
	}

	if opts.set["batch"] {
		cfg.BatchSize = opts.Batch
	}

	return cfg.Validate()
}

// readLines returns the lines of the file at path. isFile is false when
// path does not name an existing file, the argument is then a sentence.
func readLines(path string) (lines []string, isFile bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, nil
	}

	if !info.Mode().IsRegular() {
		return nil, true, fmt.Errorf("%s is not a regular file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, true, err
	}

	if !utf8.Valid(data) {
		return nil, true, fmt.Errorf("%s is not a text file", path)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{}, true, nil
	}

	lines = strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines, true, nil
}

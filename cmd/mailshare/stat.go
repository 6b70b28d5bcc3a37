package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/revelaction/mailshare/stat"
)

func statCommand(ctx context.Context, opts StatOptions, path string, ui UI) error {
	lines, isFile, err := readLines(path)
	if !isFile {
		return errors.New("stat command needs a text file")
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
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

	report, err := c.Classify(ctx, lines)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(report)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, relevant %d, num tokens per sentence %d\n", stats.NumSentences, stats.NumRelevant, stats.TokensPerSentenceMean)

	if stats.NumRelevant == 0 {
		return nil
	}

	labels := make([]string, 0, len(stats.Labels))
	for l := range stats.Labels {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	for _, l := range labels {
		fmt.Fprintf(ui.Out, "%6d %s\n", stats.Labels[l], l)
	}

	fmt.Fprintf(ui.Out, "Mean score %.2f (%s)\n", stats.ScoreMean, c.Aggregator().Name())
	fmt.Fprintf(ui.Out, "Verb before pronoun %d, past participle %d, question mark %d\n", stats.NumVerbBeforePronoun, stats.NumPastParticiple, stats.NumQuestion)

	return nil
}

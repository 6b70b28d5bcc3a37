package main

import (
	"context"

	"github.com/revelaction/mailshare/classify"
	"github.com/revelaction/mailshare/render"
	"github.com/revelaction/mailshare/repl"
)

func replCommand(ctx context.Context, opts ReplOptions, ui UI) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, ui)
	if err != nil {
		return err
	}
	defer log.Sync()

	t, err := cfg.NewTagger()
	if err != nil {
		return err
	}

	r := &render.TextRenderer{
		HasColor:  true,
		WithScore: cfg.Output.Scores && !opts.NoScore,
	}

	options := append(cfg.Options(), classify.WithLogger(log))
	h := repl.NewHandler(t, r, ui.Out, options...)
	return h.Run(ctx)
}

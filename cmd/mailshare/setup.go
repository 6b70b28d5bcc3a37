package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/revelaction/mailshare/classify"
	"github.com/revelaction/mailshare/config"
	"github.com/revelaction/mailshare/logger"
	"github.com/revelaction/mailshare/storage"
	"github.com/revelaction/mailshare/storage/filesystem"
	"github.com/revelaction/mailshare/storage/sqlite/zombiezen"
	"github.com/revelaction/mailshare/tagger"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config, ui UI) (*zap.Logger, error) {
	return logger.NewLogger(cfg.Log, ui.Err)
}

// newClassifier builds a classifier with the configured options. t
// overrides the configured tagger when not nil.
func newClassifier(cfg *config.Config, t tagger.Tagger, log *zap.Logger) (*classify.Classifier, error) {
	if t == nil {
		var err error
		t, err = cfg.NewTagger()
		if err != nil {
			return nil, err
		}
	}

	opts := append(cfg.Options(), classify.WithLogger(log))
	return classify.New(t, opts...), nil
}

func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

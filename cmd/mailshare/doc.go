package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/revelaction/mailshare/render"
	"github.com/revelaction/mailshare/storage"
	"github.com/revelaction/mailshare/storage/filesystem"
	"github.com/revelaction/mailshare/tagger"
)

// relevantFinder is implemented by corpora with a lemma index.
type relevantFinder interface {
	FindRelevant(ctx context.Context) ([]storage.SentenceResult, error)
}

func docCommand(ctx context.Context, opts DocOptions, arg string, ui UI) error {
	if strings.HasSuffix(arg, ".json") {
		doc, err := filesystem.ReadDoc(arg)
		if err != nil {
			absPath, _ := filepath.Abs(arg)
			return fmt.Errorf("filesystem document %q: %w", absPath, err)
		}
		return classifyDocs(ctx, opts, tagger.NewStatic(doc), ui)
	}

	var p Pool
	defer p.Close()

	repo, err := NewDocRepository(&p, opts.DocPath)
	if err != nil {
		return err
	}

	if opts.Relevant {
		finder, ok := repo.(relevantFinder)
		if !ok {
			return errors.New("-relevant needs a SQLite corpus")
		}

		results, err := finder.FindRelevant(ctx)
		if err != nil {
			return err
		}

		static := tagger.NewStatic()
		for _, res := range results {
			static.Add(res.Tokens)
		}
		return classifyDocs(ctx, opts, static, ui)
	}

	if arg == "" {
		return listDocs(repo, ui)
	}

	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid doc id %q", arg)
	}

	doc, err := repo.Read(id)
	if err != nil {
		return err
	}

	return classifyDocs(ctx, opts, tagger.NewStatic(doc), ui)
}

func listDocs(repo storage.DocReader, ui UI) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s \n", doc.Id, doc.Title)
	}

	return nil
}

// classifyDocs classifies every sentence the static tagger holds.
func classifyDocs(ctx context.Context, opts DocOptions, static *tagger.Static, ui UI) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, ui)
	if err != nil {
		return err
	}
	defer log.Sync()

	c, err := newClassifier(cfg, static, log)
	if err != nil {
		return err
	}

	texts := static.Texts()
	report, err := c.Classify(ctx, texts)
	if err != nil {
		return err
	}

	r, err := render.New(opts.Format, !opts.NoScore, texts)
	if err != nil {
		return err
	}

	if tr, ok := r.(*render.TextRenderer); ok {
		tr.HasColor = false
	}

	return r.Render(ui.Out, report)
}


// Package app drives the batch: scan a directory of PDFs, run the span
// normalizer and outline classifier over each file, and write one JSON
// artifact per input. Files are independent; a failure in one never stops
// the rest.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pdfoutline/internal/outline"
	"github.com/hyperifyio/pdfoutline/internal/pdfspan"
)

type App struct {
	cfg        Config
	classifier *outline.Classifier
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	c := outline.New(outline.Options{
		ExtraScripts:     cfg.ExtraScripts,
		ExtraStopPhrases: cfg.ExtraStopPhrases,
	})
	return &App{cfg: cfg, classifier: c}, nil
}

// Run processes every .pdf in the input directory (case-insensitive match,
// non-recursive) and reports the batch wall-clock time when done. Per-file
// failures are logged with the filename and skipped; an empty batch
// completes with a warning. Only a missing input directory or an
// uncreatable output directory fail the run, since then no output can be
// produced at all.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	dirEntries, err := os.ReadDir(a.cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}
	var names []string
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		log.Warn().Str("dir", a.cfg.InputDir).Msg("no input PDFs")
	}

	workers := a.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		mu     sync.Mutex
		failed int
	)
	jobs := make(chan string)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				if err := a.processFile(ctx, name); err != nil {
					log.Error().Err(err).Str("file", name).Msg("could not parse")
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, n := range names {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	log.Info().
		Int("files", len(names)).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("batch finished")
	return nil
}

// processFile runs one input end to end: optional strict validation, span
// extraction and classification, then the JSON artifact. No artifact is
// written for a file that fails.
func (a *App) processFile(ctx context.Context, name string) error {
	path := filepath.Join(a.cfg.InputDir, name)

	if a.cfg.Validate {
		if err := api.ValidateFile(path, nil); err != nil {
			return fmt.Errorf("validate: %w", err)
		}
	}

	res, err := a.extract(ctx, path)
	if err != nil {
		return err
	}

	outName := strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	if err := writeDocumentJSON(filepath.Join(a.cfg.OutputDir, outName), res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	log.Debug().Str("file", name).Str("title", res.Title).Int("headings", len(res.Outline)).Msg("processed")
	return nil
}

// extract runs open→normalize→classify under the per-file timeout. The
// parse itself cannot be cancelled midway; the timeout bounds how long the
// batch waits for a file before moving on.
func (a *App) extract(ctx context.Context, path string) (outline.Result, error) {
	if a.cfg.FileTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.FileTimeout)
		defer cancel()
	}

	type extracted struct {
		res outline.Result
		err error
	}
	ch := make(chan extracted, 1)
	go func() {
		res, err := a.extractOne(path)
		ch <- extracted{res: res, err: err}
	}()
	select {
	case r := <-ch:
		return r.res, r.err
	case <-ctx.Done():
		// The buffered channel lets the parse goroutine finish and close
		// the file on its own once the slow work completes.
		return outline.Result{}, fmt.Errorf("extract %s: %w", filepath.Base(path), ctx.Err())
	}
}

func (a *App) extractOne(path string) (outline.Result, error) {
	doc, err := pdfspan.Open(path)
	if err != nil {
		return outline.Result{}, err
	}
	defer doc.Close()

	spans, err := doc.Spans()
	if err != nil {
		return outline.Result{}, err
	}
	log.Debug().
		Str("file", filepath.Base(path)).
		Int("pages", doc.NumPage()).
		Int("spans", len(spans)).
		Msg("normalized")
	return a.classifier.Document(spans), nil
}

package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/freecell-go/internal/config"
	"github.com/lgbarn/freecell-go/internal/library"
	"github.com/lgbarn/freecell-go/internal/session"
	"github.com/lgbarn/freecell-go/internal/worker"
)

// summary counts play-all outcomes.
type summary struct {
	completed int
	failed    int
}

// playAll plays back every library game not skipped by cfg. Games run on
// cfg.Workers goroutines, each on its own board; transcripts are written
// to cfg.OutputFile in library order.
func playAll(ctx context.Context, cfg *config.Config, lib *library.Library, logger zerolog.Logger) (summary, error) {
	var seeds []int
	for _, seed := range lib.Seeds() {
		if !cfg.Skipped(seed) {
			seeds = append(seeds, seed)
		}
	}
	logger.Info().Int("games", len(seeds)).Int("workers", cfg.Workers).Msg("play-all started")

	pool := worker.NewPool(playFunc(cfg, logger), worker.WithWorkers(cfg.Workers))
	pool.Start()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		for i, seed := range seeds {
			moves, err := lib.Moves(seed)
			if err != nil {
				pool.Stop()
				return err
			}
			if err := pool.Submit(ctx, worker.WorkItem{Seed: seed, Moves: moves, Index: i}); err != nil {
				pool.Stop()
				return err
			}
		}
		return nil
	})

	var sum summary
	g.Go(func() error {
		// Drain everything so no worker blocks, even after a write error.
		var writeErr error
		pending := make(map[int]worker.ProcessResult)
		next := 0
		for r := range pool.Results() {
			pending[r.Index] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++

				if p.Completed {
					sum.completed++
				} else {
					sum.failed++
				}
				if writeErr == nil {
					_, writeErr = cfg.OutputFile.Write(p.Output)
				}
			}
		}
		return writeErr
	})

	err := g.Wait()
	logger.Info().Int("completed", sum.completed).Int("failed", sum.failed).Msg("play-all finished")
	return sum, err
}

// playFunc returns the worker function: one session per game, output
// captured in the result, no player input and no move log.
func playFunc(cfg *config.Config, logger zerolog.Logger) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		var buf bytes.Buffer
		gameCfg := *cfg
		gameCfg.SetOutput(&buf)
		gameCfg.SetInput(strings.NewReader(""))

		res, err := session.New(&gameCfg, session.WithLogger(logger)).Play(item.Seed, item.Moves)
		return worker.ProcessResult{
			Seed:      item.Seed,
			Index:     item.Index,
			Completed: res.Completed,
			MoveCount: res.MoveCount,
			Output:    buf.Bytes(),
			Err:       err,
		}
	}
}

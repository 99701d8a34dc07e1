// Package generate drives the word synthesizer for a whole run: it picks
// each word's length, applies the optional filter and writes the result.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flarebyte/nimi/internal/config"
	"github.com/flarebyte/nimi/internal/filter"
	"github.com/flarebyte/nimi/internal/output"
	"github.com/flarebyte/nimi/internal/word"
)

// ErrFilterExhausted is returned when the filter rejects every candidate
// for one word.
var ErrFilterExhausted = errors.New("filter rejected every candidate")

// Source is the randomness a run needs: the synthesizer's draws plus a
// uniform length in [lo, hi].
type Source interface {
	word.Source
	IntRange(lo, hi int) int
}

// Predicate decides whether a candidate word is kept.
type Predicate interface {
	Accept(ctx context.Context, c filter.Candidate) (bool, error)
}

// Run writes cfg.Count words to w, or keeps going until ctx is done when
// Count is 0. cfg must already be validated. pred may be nil.
func Run(ctx context.Context, cfg config.Config, src Source, pred Predicate, w output.Writer, log *slog.Logger) error {
	for i := 1; cfg.Count == 0 || i <= cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			log.Info("generation stopped", "written", i-1, "error", err)
			return err
		}
		e, err := next(ctx, cfg, src, pred, log)
		if err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
		e.Index = i
		if err := w.Write(e); err != nil {
			return fmt.Errorf("write word %d: %w", i, err)
		}
	}
	return nil
}

func next(ctx context.Context, cfg config.Config, src Source, pred Predicate, log *slog.Logger) (output.Entry, error) {
	for attempt := 1; ; attempt++ {
		n := src.IntRange(cfg.MinSyllables, cfg.MaxSyllables)
		w := word.Synthesize(word.Request{
			Syllables:        n,
			NasalProbability: cfg.NasalProbability,
			Mode:             cfg.NasalMode,
		}, src)
		if pred == nil {
			return output.Entry{Word: w, Syllables: n}, nil
		}
		ok, err := pred.Accept(ctx, filter.Candidate{Word: w, Syllables: n})
		if err != nil {
			return output.Entry{}, err
		}
		if ok {
			return output.Entry{Word: w, Syllables: n}, nil
		}
		log.Debug("candidate rejected", "word", w, "attempt", attempt)
		if attempt >= cfg.FilterAttempts {
			return output.Entry{}, fmt.Errorf("%w (%d attempts)", ErrFilterExhausted, attempt)
		}
	}
}

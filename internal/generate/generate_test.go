package generate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/flarebyte/nimi/internal/config"
	"github.com/flarebyte/nimi/internal/filter"
	"github.com/flarebyte/nimi/internal/logging"
	"github.com/flarebyte/nimi/internal/output"
	"github.com/flarebyte/nimi/internal/random"
	"github.com/flarebyte/nimi/internal/testutil"
	"github.com/flarebyte/nimi/internal/word"
)

type predicateFunc func(filter.Candidate) (bool, error)

func (p predicateFunc) Accept(_ context.Context, c filter.Candidate) (bool, error) { return p(c) }

type writerFunc func(output.Entry) error

func (w writerFunc) Write(e output.Entry) error { return w(e) }

func testConfig(count, min, max int) config.Config {
	c := config.Default()
	c.Count = count
	c.MinSyllables, c.MaxSyllables = min, max
	return c
}

func runLines(t *testing.T, cfg config.Config, src Source, pred Predicate) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	w, err := output.New(output.FormatLines, &buf)
	if err != nil {
		t.Fatalf("writer: %v", err)
	}
	err = Run(context.Background(), cfg, src, pred, w, logging.NewNop())
	return buf.String(), err
}

func TestRunWritesCountWords(t *testing.T) {
	cfg := testConfig(3, 2, 2)
	cfg.NasalProbability = 0
	got, err := runLines(t, cfg, testutil.Always(0, false), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "aka\naka\naka\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunUsesDrawnLengths(t *testing.T) {
	cfg := testConfig(3, 1, 3)
	cfg.NasalMode = word.Ala
	src := &testutil.Scripted{Picks: []int{0}, Draws: []bool{false}, Lengths: []int{1, 3, 2}, Repeat: true}
	var buf bytes.Buffer
	w, _ := output.New(output.FormatJSON, &buf)
	if err := Run(context.Background(), cfg, src, nil, w, logging.NewNop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := `{"index":1,"word":"a","syllables":1}` + "\n" +
		`{"index":2,"word":"akaka","syllables":3}` + "\n" +
		`{"index":3,"word":"aka","syllables":2}` + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, buf.String())
	}
}

func TestRunForeverStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	written := 0
	w := writerFunc(func(output.Entry) error {
		written++
		if written == 5 {
			cancel()
		}
		return nil
	})
	err := Run(ctx, testConfig(0, 1, 4), random.New(11), nil, w, logging.NewNop())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if written != 5 {
		t.Fatalf("wrote %d words, want 5", written)
	}
}

func TestRunRetriesRejectedCandidates(t *testing.T) {
	calls := 0
	pred := predicateFunc(func(c filter.Candidate) (bool, error) {
		calls++
		return calls%3 == 0, nil
	})
	cfg := testConfig(2, 1, 1)
	got, err := runLines(t, cfg, testutil.Always(0, false), pred)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "a\na\n" || calls != 6 {
		t.Fatalf("output %q after %d calls", got, calls)
	}
}

func TestRunFilterExhausted(t *testing.T) {
	cfg := testConfig(1, 1, 1)
	cfg.FilterAttempts = 3
	calls := 0
	pred := predicateFunc(func(filter.Candidate) (bool, error) {
		calls++
		return false, nil
	})
	_, err := runLines(t, cfg, testutil.Always(0, false), pred)
	if !errors.Is(err, ErrFilterExhausted) {
		t.Fatalf("expected ErrFilterExhausted, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("%d attempts, want 3", calls)
	}
	if !strings.HasPrefix(err.Error(), "word 1:") {
		t.Fatalf("error should name the word: %v", err)
	}
}

func TestRunFilterErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	pred := predicateFunc(func(filter.Candidate) (bool, error) { return false, boom })
	got, err := runLines(t, testConfig(4, 1, 2), random.New(1), pred)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != "" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunWriteErrorAborts(t *testing.T) {
	fail := errors.New("closed pipe")
	w := writerFunc(func(output.Entry) error { return fail })
	err := Run(context.Background(), testConfig(2, 1, 1), random.New(1), nil, w, logging.NewNop())
	if !errors.Is(err, fail) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRunWithLuaFilter(t *testing.T) {
	f, err := filter.New(`#word <= 6 and not word:find("n", 1, true)`, time.Second)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	defer f.Close()
	cfg := testConfig(50, 1, 4)
	cfg.FilterAttempts = 1000
	got, err := runLines(t, cfg, random.New(7), f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	words := strings.Fields(got)
	if len(words) != 50 {
		t.Fatalf("%d words, want 50", len(words))
	}
	for _, w := range words {
		if len(w) > 6 {
			t.Fatalf("word %q longer than 6", w)
		}
	}
}

func TestRunDeterministicForSeed(t *testing.T) {
	cfg := testConfig(30, 1, 5)
	a, err := runLines(t, cfg, random.New(123), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := runLines(t, cfg, random.New(123), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a != b {
		t.Fatalf("same seed produced different output")
	}
}

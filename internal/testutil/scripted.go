// Package testutil holds test doubles shared across packages.
package testutil

import (
	"fmt"

	"github.com/flarebyte/nimi/internal/syllable"
)

// Scripted is a random source that replays fixed draws. It panics when a
// script runs out unless Repeat is set, in which case the last value of
// each script is reused. A pick past the end of a table selects its last
// entry.
type Scripted struct {
	Picks   []int
	Draws   []bool
	Lengths []int
	Repeat  bool

	// Tables records the name of every table Choose was called with.
	Tables []string
	// Probabilities records every p passed to Bool.
	Probabilities []float64

	pick, draw, length int
}

// Always returns a source that always picks index pick and always answers draw.
func Always(pick int, draw bool) *Scripted {
	return &Scripted{Picks: []int{pick}, Draws: []bool{draw}, Repeat: true}
}

func (s *Scripted) Choose(t syllable.Table) string {
	s.Tables = append(s.Tables, t.Name())
	i := next(s.Picks, &s.pick, s.Repeat, "pick")
	if i >= t.Len() {
		i = t.Len() - 1
	}
	return t.At(i)
}

func (s *Scripted) Bool(p float64) bool {
	s.Probabilities = append(s.Probabilities, p)
	return next(s.Draws, &s.draw, s.Repeat, "draw")
}

// IntRange replays Lengths; with no Lengths scripted it returns lo.
func (s *Scripted) IntRange(lo, hi int) int {
	if len(s.Lengths) == 0 {
		return lo
	}
	n := next(s.Lengths, &s.length, s.Repeat, "length")
	if n < lo || n > hi {
		panic(fmt.Sprintf("testutil: scripted length %d outside [%d, %d]", n, lo, hi))
	}
	return n
}

func next[T any](script []T, pos *int, repeat bool, what string) T {
	if *pos >= len(script) {
		if !repeat || len(script) == 0 {
			panic(fmt.Sprintf("testutil: %s script exhausted after %d values", what, len(script)))
		}
		return script[len(script)-1]
	}
	v := script[*pos]
	*pos++
	return v
}

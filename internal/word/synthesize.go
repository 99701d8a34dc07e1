// Package word builds pseudo-words from the syllable tables.
package word

import (
	"strings"

	"github.com/flarebyte/nimi/internal/syllable"
)

// Source is the randomness a word is built from. Choose picks a table entry
// uniformly; Bool returns true with probability p, p in [0,1].
type Source interface {
	Choose(t syllable.Table) string
	Bool(p float64) bool
}

// Request describes one word.
type Request struct {
	// Syllables is the budget of units to spend. Callers guarantee >= 1.
	Syllables int
	// NasalProbability is the chance of a nasal after each non-final syllable.
	NasalProbability float64
	Mode             Mode
}

// Synthesize builds one word. The first syllable comes from
// syllable.WordInitial, a syllable following a nasal from syllable.PostNasal,
// any other from syllable.General. No nasal is drawn after the syllable that
// exhausts the budget. A zero budget yields "".
//
// The result depends only on the sequence of draws made on src.
func Synthesize(req Request, src Source) string {
	var b strings.Builder
	produced := 0
	afterNasal := false
	for produced < req.Syllables {
		table := syllable.General
		switch {
		case produced == 0:
			table = syllable.WordInitial
		case afterNasal:
			table = syllable.PostNasal
		}
		b.WriteString(src.Choose(table))
		produced++
		if produced == req.Syllables {
			break
		}
		if src.Bool(req.NasalProbability) {
			b.WriteString(syllable.Nasal)
			afterNasal = true
			if req.Mode.CountsNasal() {
				produced++
			}
		} else {
			afterNasal = false
		}
	}
	return b.String()
}

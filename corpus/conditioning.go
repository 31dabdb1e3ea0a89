package corpus

import (
	"github.com/bon-cdp/sheaflearn/discover"
)

// Conditioning constructors bridging corpus knowledge to patch discovery.
// Each closure conditions on the *target* token, mirroring how the patches
// of a language model are naturally keyed by the word being predicted.

// FrequencyConditioning keys each pair by the target word's frequency band
// (high/mid/low) within the given corpus.
func (g *Generator) FrequencyConditioning(sentences [][]string) discover.Conditioning {
	return func(_ []float64, target float64) string {
		return FrequencyBand(g.Word(int(target)), sentences)
	}
}

// POSConditioning keys each pair by the target word's part of speech.
func (g *Generator) POSConditioning() discover.Conditioning {
	return func(_ []float64, target float64) string {
		return "pos_" + g.POS(g.Word(int(target)))
	}
}

// FirstLetterConditioning splits targets by the alphabet half their first
// letter falls in.
func (g *Generator) FirstLetterConditioning() discover.Conditioning {
	return func(_ []float64, target float64) string {
		word := g.Word(int(target))
		if word != "" && word[0] < 'n' {
			return "first_half_alphabet"
		}

		return "second_half_alphabet"
	}
}

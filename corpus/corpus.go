// Package corpus generates a tiny, grammatically structured mini-language
// for exercising sheaf language models on small datasets.
//
// The language has ~40 unique tokens organized by part of speech, six
// deterministic sentence templates, and a naturally skewed frequency
// distribution (function words recur across templates). Generation is
// seeded, so a Generator with a fixed seed always produces the same corpus
// and the same training data; fits over it are reproducible bit for bit.
//
// TrainingData converts sentences to (context → next token) pairs by
// strict sliding windows: a sentence shorter than the context size
// contributes no pairs.
package corpus

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownWord indicates a word outside the generator's vocabulary.
var ErrUnknownWord = errors.New("corpus: unknown word")

// Frequency band labels used as patch keys by the frequency conditioning.
const (
	HighFreq = "high_freq"
	MidFreq  = "mid_freq"
	LowFreq  = "low_freq"
)

// partsOfSpeech fixes the POS iteration order so vocabulary indices are
// stable across runs.
var partsOfSpeech = []string{"DET", "NOUN", "VERB", "ADJ", "ADV", "PREP"}

var vocab = map[string][]string{
	"DET": {"the", "a", "an"},
	"NOUN": {"cat", "dog", "bird", "mat", "rug", "tree",
		"house", "car", "book", "table", "chair"},
	"VERB": {"sat", "ran", "flew", "jumped", "walked",
		"looked", "ate", "slept"},
	"ADJ":  {"big", "small", "red", "blue", "quick", "slow"},
	"ADV":  {"quickly", "slowly", "quietly", "loudly"},
	"PREP": {"on", "in", "under", "over", "near", "by"},
}

// Sentence templates: each entry is a sequence of POS slots.
var templates = [][]string{
	{"DET", "NOUN", "VERB", "PREP", "DET", "NOUN"}, // "the cat sat on the mat"
	{"DET", "ADJ", "NOUN", "VERB"},                 // "the big dog ran"
	{"DET", "NOUN", "VERB", "ADV"},                 // "a bird flew quickly"
	{"DET", "ADJ", "NOUN", "VERB", "PREP", "DET", "NOUN"},
	{"NOUN", "VERB", "NOUN"}, // telegraphic
	{"DET", "NOUN", "VERB", "DET", "ADJ", "NOUN"},
}

// Generator produces seeded, templated sentences over a fixed vocabulary.
type Generator struct {
	rng       *rand.Rand
	words     []string       // flat vocabulary, index = token id
	wordIndex map[string]int // word -> token id
	wordPOS   map[string]string
}

// NewGenerator returns a Generator with the given seed. Equal seeds produce
// equal corpora.
func NewGenerator(seed int64) *Generator {
	g := &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		wordIndex: make(map[string]int),
		wordPOS:   make(map[string]string),
	}
	for _, pos := range partsOfSpeech {
		for _, w := range vocab[pos] {
			g.wordIndex[w] = len(g.words)
			g.words = append(g.words, w)
			g.wordPOS[w] = pos
		}
	}

	return g
}

// VocabSize returns the number of distinct tokens.
func (g *Generator) VocabSize() int { return len(g.words) }

// Word returns the word for a token id, or "" when out of range.
func (g *Generator) Word(id int) string {
	if id < 0 || id >= len(g.words) {
		return ""
	}

	return g.words[id]
}

// Index returns the token id of a word.
func (g *Generator) Index(word string) (int, error) {
	id, ok := g.wordIndex[word]
	if !ok {
		return 0, fmt.Errorf("corpus: %q: %w", word, ErrUnknownWord)
	}

	return id, nil
}

// POS returns the part of speech of a word, or "UNK" when unknown.
func (g *Generator) POS(word string) string {
	if pos, ok := g.wordPOS[word]; ok {
		return pos
	}

	return "UNK"
}

// Sentence generates one sentence from a random template.
func (g *Generator) Sentence() []string {
	tmpl := templates[g.rng.Intn(len(templates))]
	out := make([]string, len(tmpl))
	for i, pos := range tmpl {
		choices := vocab[pos]
		out[i] = choices[g.rng.Intn(len(choices))]
	}

	return out
}

// Corpus generates n sentences.
func (g *Generator) Corpus(n int) [][]string {
	out := make([][]string, n)
	for i := range out {
		out[i] = g.Sentence()
	}

	return out
}

// Frequency counts occurrences of word across sentences.
func Frequency(word string, sentences [][]string) int {
	count := 0
	for _, sent := range sentences {
		for _, w := range sent {
			if w == word {
				count++
			}
		}
	}

	return count
}

// FrequencyBand classifies a word by corpus frequency. Thresholds follow
// the usual Zipf-like shape of the templated language: >= 30 is high,
// >= 10 is mid, anything rarer is low.
func FrequencyBand(word string, sentences [][]string) string {
	switch freq := Frequency(word, sentences); {
	case freq >= 30:
		return HighFreq
	case freq >= 10:
		return MidFreq
	default:
		return LowFreq
	}
}

// TrainingData converts sentences into (context → next token) pairs with a
// strict sliding window of contextSize tokens. Contexts and targets are
// scalar token ids widened to float64, the shape the sheaf solver consumes.
// Returns ErrUnknownWord for a word outside the vocabulary.
func (g *Generator) TrainingData(sentences [][]string, contextSize int) ([][]float64, []float64, error) {
	var contexts [][]float64
	var targets []float64
	for _, sent := range sentences {
		ids := make([]int, len(sent))
		for i, w := range sent {
			id, err := g.Index(w)
			if err != nil {
				return nil, nil, err
			}
			ids[i] = id
		}
		for i := contextSize; i < len(ids); i++ {
			ctx := make([]float64, contextSize)
			for j := 0; j < contextSize; j++ {
				ctx[j] = float64(ids[i-contextSize+j])
			}
			contexts = append(contexts, ctx)
			targets = append(targets, float64(ids[i]))
		}
	}

	return contexts, targets, nil
}

package discover

import (
	"errors"
	"fmt"

	"github.com/bon-cdp/sheaflearn/sheaf"
)

// Sentinel errors returned by partitioning and search.
var (
	// ErrLengthMismatch indicates that samples and targets differ in length.
	ErrLengthMismatch = errors.New("discover: sample/target length mismatch")

	// ErrNoSamples indicates that there is no data to partition.
	ErrNoSamples = errors.New("discover: no samples")

	// ErrNilConditioning indicates a nil conditioning function.
	ErrNilConditioning = errors.New("discover: conditioning function is nil")

	// ErrNoStrategies indicates that Search was given an empty strategy list.
	ErrNoStrategies = errors.New("discover: no strategies to try")
)

// Conditioning maps one (sample, target) pair to an opaque patch key.
// The solver never interprets key content; keys only need to be stable for
// a given pair.
type Conditioning func(sample []float64, target float64) string

// Partition groups (sample, target) pairs into patches keyed by the
// conditioning function, in first-seen key order, and assembles a
// sheaf.Problem. Every patch inherits base's NumCharacters and ModelDim;
// its position count is resolved from its own first sample when
// base.NumPositions is zero.
func Partition(samples [][]float64, targets []float64, base sheaf.Config, fn Conditioning) (*sheaf.Problem, error) {
	if fn == nil {
		return nil, ErrNilConditioning
	}
	if len(samples) != len(targets) {
		return nil, fmt.Errorf("discover: %d samples, %d targets: %w", len(samples), len(targets), ErrLengthMismatch)
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	type bucket struct {
		samples [][]float64
		targets []float64
	}
	var order []string
	buckets := make(map[string]*bucket)
	for i, s := range samples {
		key := fn(s, targets[i])
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
			order = append(order, key)
		}
		b.samples = append(b.samples, s)
		b.targets = append(b.targets, targets[i])
	}

	problem := sheaf.NewProblem()
	for _, key := range order {
		b := buckets[key]
		cfg := base
		if cfg.NumPositions == 0 {
			cfg.NumPositions = len(b.samples[0])
		}
		if err := problem.AddPatch(key, sheaf.Patch{
			Samples: b.samples,
			Targets: b.targets,
			Config:  cfg,
		}); err != nil {
			return nil, fmt.Errorf("discover: partitioning: %w", err)
		}
	}

	return problem, nil
}

// SinglePatch is the baseline conditioning: every pair lands in one patch.
func SinglePatch(_ []float64, _ float64) string { return "main" }

// LeadTokenMod conditions on the leading sample value modulo k, yielding at
// most k patches. Panics on k <= 0 (programmer error).
func LeadTokenMod(k int) Conditioning {
	if k <= 0 {
		panic("discover: LeadTokenMod requires k > 0")
	}

	return func(sample []float64, _ float64) string {
		if len(sample) == 0 {
			return "lead_none"
		}

		return fmt.Sprintf("lead_%d", mod(int(sample[0]), k))
	}
}

// TargetMod conditions on the target value modulo k, yielding at most k
// patches. Panics on k <= 0 (programmer error).
func TargetMod(k int) Conditioning {
	if k <= 0 {
		panic("discover: TargetMod requires k > 0")
	}

	return func(_ []float64, target float64) string {
		return fmt.Sprintf("target_%d", mod(int(target), k))
	}
}

// mod is the nonnegative remainder, so negative values share the buckets of
// their residue class instead of minting "lead_-1" style keys.
func mod(v, k int) int { return ((v % k) + k) % k }

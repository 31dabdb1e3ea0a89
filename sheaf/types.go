package sheaf

import "fmt"

// Config declares the feature geometry of a patch.
//
// NumCharacters – how many cyclic-group characters to use as basis functions
// (may be less than NumPositions, truncating the basis). NumPositions – the
// declared sample length; the zero value is resolved from the patch's first
// sample. ModelDim – target dimensionality; the zero value means 1, and any
// other value than 1 is rejected with ErrModelDim.
type Config struct {
	NumCharacters int // character projections per position
	NumPositions  int // positions per sample (0: resolve from data)
	ModelDim      int // target dimension (0 or 1)
}

// Width returns the number of weight columns the configuration spans,
// NumPositions·NumCharacters.
func (c Config) Width() int { return c.NumPositions * c.NumCharacters }

// Patch is one named local learning problem: an ordered list of samples,
// a parallel list of scalar targets, and a feature configuration. A patch is
// immutable during fitting; Fit never mutates it.
type Patch struct {
	Samples [][]float64 // each sample is a sequence of NumPositions scalars
	Targets []float64   // one scalar target per sample
	Config  Config
}

// Gluing declares a consistency constraint between two patches: the two
// patches' predictions must coincide when patch 1 is evaluated at Sample1
// and patch 2 at Sample2. A gluing only reads the designated samples; it
// owns no patch data.
type Gluing struct {
	Patch1, Patch2   string
	Sample1, Sample2 []float64
}

// Problem is a complete in-memory problem definition: a collection of named
// patches plus gluing declarations. Patch iteration order is insertion
// order, which fixes the column layout of the global weight vector, so two
// Problems built with the same AddPatch sequence produce bit-identical fits.
// Patch names are opaque keys: the solver never interprets their content.
type Problem struct {
	order   []string
	patches map[string]Patch
	gluings []Gluing
}

// NewProblem returns an empty problem definition.
func NewProblem() *Problem {
	return &Problem{patches: make(map[string]Patch)}
}

// AddPatch registers a patch under an opaque name. Patches are validated
// eagerly: ErrDuplicatePatch for a repeated name, ErrSampleTargetMismatch
// when samples and targets differ in length.
func (p *Problem) AddPatch(name string, patch Patch) error {
	if _, dup := p.patches[name]; dup {
		return fmt.Errorf("sheaf: AddPatch(%q): %w", name, ErrDuplicatePatch)
	}
	if len(patch.Samples) != len(patch.Targets) {
		return fmt.Errorf("sheaf: AddPatch(%q): %d samples, %d targets: %w",
			name, len(patch.Samples), len(patch.Targets), ErrSampleTargetMismatch)
	}
	p.order = append(p.order, name)
	p.patches[name] = patch

	return nil
}

// AddGluing registers a gluing constraint. Referenced patch names are
// checked at Fit time, not here, so gluings may be declared before their
// patches.
func (p *Problem) AddGluing(g Gluing) {
	p.gluings = append(p.gluings, g)
}

// PatchNames returns the patch names in insertion order.
func (p *Problem) PatchNames() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)

	return out
}

// Patch returns the patch registered under name and whether it exists.
func (p *Problem) Patch(name string) (Patch, bool) {
	patch, ok := p.patches[name]

	return patch, ok
}

// Gluings returns a copy of the declared gluing constraints.
func (p *Problem) Gluings() []Gluing {
	out := make([]Gluing, len(p.gluings))
	copy(out, p.gluings)

	return out
}

// resolveConfigs validates every patch configuration and resolves zero-value
// NumPositions from the patch's first sample. The returned map is the single
// source of truth for feature widths during one fit; a fresh map is built
// per call so concurrent fits of the same Problem never share state.
func (p *Problem) resolveConfigs() (map[string]Config, error) {
	resolved := make(map[string]Config, len(p.order))
	for _, name := range p.order {
		patch := p.patches[name]
		cfg := patch.Config
		if cfg.ModelDim == 0 {
			cfg.ModelDim = 1
		}
		if cfg.ModelDim != 1 {
			return nil, fmt.Errorf("sheaf: patch %q declares model dim %d: %w", name, cfg.ModelDim, ErrModelDim)
		}
		if cfg.NumCharacters <= 0 {
			return nil, fmt.Errorf("sheaf: patch %q declares %d characters: %w", name, cfg.NumCharacters, ErrBadConfig)
		}
		if cfg.NumPositions < 0 {
			return nil, fmt.Errorf("sheaf: patch %q declares %d positions: %w", name, cfg.NumPositions, ErrBadConfig)
		}
		if cfg.NumPositions == 0 && len(patch.Samples) > 0 {
			cfg.NumPositions = len(patch.Samples[0])
		}
		resolved[name] = cfg
	}

	return resolved, nil
}

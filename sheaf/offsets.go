package sheaf

// span is one patch's column range inside the global weight vector.
type span struct {
	offset int // first column owned by the patch
	width  int // NumPositions·NumCharacters
	cfg    Config
}

// offsetTable maps each patch to its column span. It is computed in one
// explicit pass before any matrix is built and then passed by value into the
// local builder, the gluing builder and the unpacker, so no builder stage
// depends on another's mutation order.
type offsetTable struct {
	order []string
	spans map[string]span
	total int // total weight columns across all patches
}

// buildOffsets assigns column spans by accumulating widths in patch
// insertion order starting at offset 0. Spans of distinct patches never
// overlap and together cover [0, total) exactly.
func buildOffsets(p *Problem, resolved map[string]Config) offsetTable {
	tab := offsetTable{
		order: p.PatchNames(),
		spans: make(map[string]span, len(p.order)),
	}
	for _, name := range tab.order {
		cfg := resolved[name]
		w := cfg.Width()
		tab.spans[name] = span{offset: tab.total, width: w, cfg: cfg}
		tab.total += w
	}

	return tab
}

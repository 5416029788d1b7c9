package expr

// Index resolves references to capturing groups. It is built once per run
// and never owns the groups it points to.
type Index struct {
	byNumber map[int]*Expression
	byName   map[string]*Expression
}

// NewIndex walks root and records every capturing group. Ordinal 0 maps to root.
func NewIndex(root *Expression) *Index {
	idx := &Index{
		byNumber: map[int]*Expression{0: root},
		byName:   make(map[string]*Expression),
	}

	for e := range root.Descendants() {
		if !e.IsCapture() {
			continue
		}

		if _, exists := idx.byNumber[e.Number]; !exists {
			idx.byNumber[e.Number] = e
		}

		if e.Name != "" {
			if _, exists := idx.byName[e.Name]; !exists {
				idx.byName[e.Name] = e
			}
		}
	}

	return idx
}

// Lookup returns the group a reference points at.
func (idx *Index) Lookup(ref Reference) (*Expression, bool) {
	if ref.Name != "" {
		e, ok := idx.byName[ref.Name]
		return e, ok
	}

	e, ok := idx.byNumber[ref.Number]

	return e, ok
}

// Len is the number of capturing groups, excluding the whole pattern.
func (idx *Index) Len() int {
	return len(idx.byNumber) - 1
}

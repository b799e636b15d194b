package domain

// Recipe is an ordered list of operations executed against a single vessel.
type Recipe struct {
	Name string       `json:"name,omitempty" yaml:"name,omitempty"`
	Ops  []*Operation `json:"ops" yaml:"ops"`
}

// Clone deep-copies the recipe so a run can mutate ingredient values without
// touching the caller's copy.
func (r *Recipe) Clone() *Recipe {
	ops := make([]*Operation, len(r.Ops))
	for i, op := range r.Ops {
		ops[i] = op.Clone()
	}
	return &Recipe{Name: r.Name, Ops: ops}
}

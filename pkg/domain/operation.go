package domain

import (
	"strings"

	"github.com/quernlab/quern/pkg/vessel"
)

// OpKind is the dispatch tag for the fixed set of flow-control primitives.
// Everything that is not a primitive is KindGeneric and resolved through the
// operation catalog at execution time.
type OpKind int

const (
	KindGeneric OpKind = iota
	KindFork
	KindMerge
	KindRegister
	KindJump
	KindCondJump
	KindReturn
	KindComment
	KindLabel
)

// String returns the canonical operation name for flow-control kinds.
func (k OpKind) String() string {
	switch k {
	case KindFork:
		return "Fork"
	case KindMerge:
		return "Merge"
	case KindRegister:
		return "Register"
	case KindJump:
		return "Jump"
	case KindCondJump:
		return "Conditional Jump"
	case KindReturn:
		return "Return"
	case KindComment:
		return "Comment"
	case KindLabel:
		return "Label"
	default:
		return "Generic"
	}
}

// KindOf resolves an operation name to its flow-control kind.
// The match is case-insensitive and tolerant of separator style so recipe
// documents can spell "conditional jump" or "Conditional Jump" alike.
func KindOf(name string) OpKind {
	switch strings.ToLower(strings.Join(strings.Fields(name), " ")) {
	case "fork", "subsection fork":
		return KindFork
	case "merge":
		return KindMerge
	case "register":
		return KindRegister
	case "jump":
		return KindJump
	case "conditional jump", "cond jump":
		return KindCondJump
	case "return":
		return KindReturn
	case "comment":
		return KindComment
	case "label":
		return KindLabel
	default:
		return KindGeneric
	}
}

// ToggleText is a structured ingredient value: a textual payload plus a mode
// selector (e.g. "regex" vs "simple" for a search pattern). Register
// substitution rewrites only the Text field.
type ToggleText struct {
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`
	Text string `json:"text" yaml:"text" mapstructure:"text"`
}

// Ingredient is one argument slot of an operation. Values are heterogeneous:
// string, bool, int, float64 or *ToggleText. The Value field is mutable in
// place; register substitution rewrites it for the remainder of a run.
type Ingredient struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Value any    `json:"value" yaml:"value"`
}

// Operation is one step of a recipe. Identity (Name, Kind) is immutable for
// the lifetime of a run; ingredient values are not.
type Operation struct {
	Name        string       `json:"op" yaml:"op"`
	Kind        OpKind       `json:"-" yaml:"-"`
	InputType   vessel.Type  `json:"-" yaml:"-"`
	OutputType  vessel.Type  `json:"-" yaml:"-"`
	Disabled    bool         `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Ingredients []Ingredient `json:"args,omitempty" yaml:"args,omitempty"`
}

// IngredientValues returns the current argument values in order.
func (o *Operation) IngredientValues() []any {
	vals := make([]any, len(o.Ingredients))
	for i, ing := range o.Ingredients {
		vals[i] = ing.Value
	}
	return vals
}

// SetIngredientValues overwrites the argument values in order. Extra values
// are ignored; missing ones leave the existing slot untouched.
func (o *Operation) SetIngredientValues(vals []any) {
	for i := range o.Ingredients {
		if i < len(vals) {
			o.Ingredients[i].Value = vals[i]
		}
	}
}

// Clone returns a deep copy of the operation. Fork tranches execute against
// cloned operations so tranche-local mutation cannot leak back to siblings
// or the outer list.
func (o *Operation) Clone() *Operation {
	cp := *o
	cp.Ingredients = make([]Ingredient, len(o.Ingredients))
	for i, ing := range o.Ingredients {
		cp.Ingredients[i] = Ingredient{Name: ing.Name, Value: CloneValue(ing.Value)}
	}
	return &cp
}

// CloneValue deep-copies a single ingredient value.
func CloneValue(v any) any {
	if tt, ok := v.(*ToggleText); ok {
		cp := *tt
		return &cp
	}
	return v
}

// CloneValues deep-copies a value slice. Used by Fork to snapshot and restore
// the per-tranche ingredient baseline.
func CloneValues(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = CloneValue(v)
	}
	return out
}

// Package compiler converts recipe documents (YAML or JSON) into domain
// recipes and runs soft structural validation over them.
package compiler

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/vessel"
)

// recipeDoc is the on-disk shape of a recipe.
type recipeDoc struct {
	Name string  `yaml:"name" json:"name"`
	Ops  []opDoc `yaml:"ops" json:"ops"`
}

type opDoc struct {
	Op       string `yaml:"op" json:"op"`
	Disabled bool   `yaml:"disabled" json:"disabled"`
	Input    string `yaml:"input" json:"input"`
	Output   string `yaml:"output" json:"output"`
	Args     []any  `yaml:"args" json:"args"`
}

// ParseYAML decodes a YAML recipe document.
func ParseYAML(data []byte) (*domain.Recipe, error) {
	var doc recipeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	return build(&doc)
}

// ParseJSON decodes a JSON recipe document.
func ParseJSON(data []byte) (*domain.Recipe, error) {
	var doc recipeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	return build(&doc)
}

func build(doc *recipeDoc) (*domain.Recipe, error) {
	if len(doc.Ops) == 0 {
		return nil, fmt.Errorf("recipe has no operations")
	}

	recipe := &domain.Recipe{Name: doc.Name, Ops: make([]*domain.Operation, 0, len(doc.Ops))}
	for i, od := range doc.Ops {
		if od.Op == "" {
			return nil, fmt.Errorf("operation %d is missing its name", i)
		}
		op := &domain.Operation{
			Name:       od.Op,
			Kind:       domain.KindOf(od.Op),
			InputType:  vessel.TypeFromString(od.Input),
			OutputType: vessel.TypeFromString(od.Output),
			Disabled:   od.Disabled,
		}
		for _, arg := range od.Args {
			val, err := decodeArg(arg)
			if err != nil {
				return nil, fmt.Errorf("operation %d (%s): %w", i, od.Op, err)
			}
			op.Ingredients = append(op.Ingredients, domain.Ingredient{Value: val})
		}
		recipe.Ops = append(recipe.Ops, op)
	}
	return recipe, nil
}

// decodeArg normalizes a raw document value into an ingredient value.
// Maps with a "text" field become structured ToggleText arguments.
func decodeArg(raw any) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return raw, nil
	}
	if _, has := m["text"]; !has {
		return raw, nil
	}
	var tt domain.ToggleText
	if err := mapstructure.Decode(m, &tt); err != nil {
		return nil, fmt.Errorf("invalid structured argument: %w", err)
	}
	return &tt, nil
}

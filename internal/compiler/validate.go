package compiler

import (
	"fmt"
	"regexp"

	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/ports"
)

// Validate inspects a recipe for problems that would degrade at run time.
// It returns diagnostics rather than errors: a recipe with a dangling jump
// or a disabled label still executes (the runtime degrades silently), so
// these checks can only warn.
func Validate(r *domain.Recipe, catalog ports.Catalog) []string {
	var diags []string

	for i, op := range r.Ops {
		if op.Disabled {
			continue
		}
		switch op.Kind {
		case domain.KindGeneric:
			if _, ok := catalog.Transform(op.Name); !ok {
				diags = append(diags, fmt.Sprintf("op %d: unknown operation %q", i, op.Name))
			}
		case domain.KindJump:
			diags = append(diags, checkLabel(r, i, stringArg(op, 0))...)
		case domain.KindCondJump:
			if pat := stringArg(op, 0); pat != "" {
				if _, err := regexp.Compile(pat); err != nil {
					diags = append(diags, fmt.Sprintf("op %d: invalid jump condition: %v", i, err))
				}
			}
			diags = append(diags, checkLabel(r, i, stringArg(op, 2))...)
		case domain.KindRegister:
			if _, err := regexp.Compile(stringArg(op, 0)); err != nil {
				diags = append(diags, fmt.Sprintf("op %d: invalid extraction pattern: %v", i, err))
			}
		}
	}

	return diags
}

func checkLabel(r *domain.Recipe, at int, label string) []string {
	if label == "" {
		return []string{fmt.Sprintf("op %d: jump has no target label", at)}
	}
	for _, op := range r.Ops {
		if op.Kind == domain.KindLabel && !op.Disabled && stringArg(op, 0) == label {
			return nil
		}
	}
	return []string{fmt.Sprintf("op %d: label %q not found or disabled (jump will be a no-op)", at, label)}
}

func stringArg(op *domain.Operation, i int) string {
	if i < len(op.Ingredients) {
		if s, ok := op.Ingredients[i].Value.(string); ok {
			return s
		}
	}
	return ""
}

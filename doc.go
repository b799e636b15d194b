/*
Package quern is a recipe-based data transformation engine.

A recipe is an ordered list of typed, parameterized operations executed step
by step against a single value container (the vessel). Most operations are
linear: they consume the vessel, transform it, and advance one step. The
engine also implements the non-linear primitives that make recipes more than
a pipe: conditional and unconditional jumps with loop budgets, labeled
targets, a Fork/Merge construct that partitions the input into tranches and
re-runs the remaining pipeline over each one, and a Register construct that
extracts values from the current data and live-patches the arguments of all
downstream operations.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/quernlab/quern"
	)

	func main() {
		recipe, err := quern.ParseRecipeYAML([]byte(`
	ops:
	  - op: Fork
	    args: [",", ";", false]
	  - op: To Upper Case
	  - op: Merge
	`))
		if err != nil {
			log.Fatal(err)
		}

		eng := quern.New()
		res, err := eng.Bake(context.Background(), recipe, "a,b,c")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Output) // A;B;C;
	}

# Termination

Jumps are the only way a recipe can loop. Every jump operation carries its
own budget; once the run's global jump count reaches it, further jumps
degrade to no-ops and the recipe falls through to completion. Unresolved
labels degrade the same way. A recipe therefore always terminates, whatever
its author intended.

# Extending

Generic operations are resolved through a registry. Use WithOperation to add
host-defined transforms alongside the built-ins in package ops.
*/
package quern

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quernlab/quern"
)

// validateCmd checks a recipe file without running it.
var validateCmd = &cobra.Command{
	Use:   "validate <recipe.yaml>",
	Short: "Check a recipe for problems without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := loadRecipe(args[0])
		if err != nil {
			return err
		}

		eng := quern.New()
		diags := eng.Validate(recipe)
		if len(diags) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "recipe is valid")
			return nil
		}
		for _, d := range diags {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		return fmt.Errorf("%d diagnostic(s)", len(diags))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

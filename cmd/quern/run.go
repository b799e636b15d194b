package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quernlab/quern"
	"github.com/quernlab/quern/pkg/domain"
)

// runCmd executes a recipe file against stdin or --input.
var runCmd = &cobra.Command{
	Use:   "run <recipe.yaml>",
	Short: "Run a recipe against input",
	Long:  `Executes the recipe against input read from --input or stdin, writing the result to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer closeLog()

		recipe, err := loadRecipe(args[0])
		if err != nil {
			return err
		}

		input, _ := cmd.Flags().GetString("input")
		if !cmd.Flags().Changed("input") {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("cannot read stdin: %w", err)
			}
			input = string(raw)
		}

		eng := quern.New(quern.WithLogger(logger))
		for _, diag := range eng.Validate(recipe) {
			logger.Warn("recipe diagnostic", "detail", diag)
		}

		res, err := eng.Bake(cmd.Context(), recipe, input)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), res.Output)
		return nil
	},
}

// loadRecipe reads a recipe document, choosing the decoder by file extension.
func loadRecipe(path string) (*domain.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read recipe: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return quern.ParseRecipeJSON(data)
	}
	return quern.ParseRecipeYAML(data)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "Input text (default: read stdin)")
}

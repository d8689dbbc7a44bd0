package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/translator"
)

var translateCmd = &cobra.Command{
	Use:          "translate <input-file>",
	Short:        "Translate a LaTeX file into a Lean file",
	Long:         `Run a best-effort syntactic translation from LaTeX math notation into Lean 4 source text.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runTranslate,
	SilenceUsage: true,
}

func init() {
	translateCmd.Flags().StringP("output", "o", "", "Output file (default: input with .lean extension)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	input := args[0]
	output, _ := cmd.Flags().GetString("output")

	cons.Printf("Translating %s...\n", input)

	outPath, err := translator.New().TranslateFile(input, output)
	if err != nil {
		if errors.Is(err, translator.ErrEmptyInput) {
			cons.Errorf("Warning: input is empty, nothing to translate.\n")
			return nil
		}

		cons.Errorf("Error during translation: %v\n", err)
		return err
	}

	cons.Successf("Successfully translated to %s\n", outPath)

	return nil
}

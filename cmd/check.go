package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/verify"
)

var checkCmd = &cobra.Command{
	Use:          "check <file>",
	Short:        "Check a Lean file for correctness",
	Long:         `Verify a Lean file by locating its project root and building the project with lake.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	path := args[0]
	cons.Printf("Checking file: %s\n", path)

	result := verify.CheckFile(newRunner(), path)
	if result.Success {
		cons.Successf("%s\n", result.Message)
		return nil
	}

	cons.Errorf("%s\n", result.Message)

	return errors.New("verification failed")
}

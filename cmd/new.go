package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/project"
)

var newCmd = &cobra.Command{
	Use:          "new <project-name>",
	Short:        "Create a new Lean proof project",
	Long:         `Scaffold a new Lean project with lake init and a starter proof file.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runNew,
	SilenceUsage: true,
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	cons.Printf("Creating new Lean project '%s'...\n", name)

	if err := project.Create(newRunner(), name, cfg.Template); err != nil {
		cons.Errorf("Error: %v\n", err)
		return err
	}

	cons.Successf("Successfully created project '%s'.\n", name)
	cons.Printf("To get started, run: cd %s\n", name)

	return nil
}

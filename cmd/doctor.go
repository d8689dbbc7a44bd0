package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/toolchain"
)

var doctorCmd = &cobra.Command{
	Use:          "doctor",
	Short:        "Check that the Lean toolchain is installed",
	Long:         `Probe the lean and lake executables to verify the proof toolchain is reachable and functioning.`,
	Args:         cobra.NoArgs,
	RunE:         runDoctor,
	SilenceUsage: true,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ok, msg := toolchain.CheckInstallation(newRunner())
	if !ok {
		cons.Errorf("%s\n", msg)
		return errors.New("toolchain check failed")
	}

	cons.Successf("Lean toolchain is installed and working.\n")
	cons.Printf("%s\n", msg)

	return nil
}

package main

import "github.com/lean-forge/proofcheck/cmd"

func main() {
	cmd.Execute()
}

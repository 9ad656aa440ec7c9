// Version command for the opsdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI release version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the opsdeck version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("opsdeck", version)
	},
}

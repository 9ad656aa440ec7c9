// Init command for the opsdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize opsdeck storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already ensured the config directory and a
		// default config.yaml; attaching creates the data directory.
		configDir, err := resolveConfigDir()
		if err != nil {
			failSys("init: %s", err)
		}

		st, err := attachStore()
		if err != nil {
			failSys("init: %s", err)
		}
		defer st.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			failSys("init: %s", err)
		}

		fmt.Println("Opsdeck initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}

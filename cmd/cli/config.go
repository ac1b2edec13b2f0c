// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxcalc/internal/config"
	"taxcalc/internal/statetax"
	"taxcalc/internal/tax"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage taxcalc configuration",
	Long: `Provides subcommands to manage the taxcalc configuration.
This includes the default filing status and default state used when the
corresponding flags or wizard answers are omitted. Bracket table overrides
are edited directly in the config file.`,
}

var configSetStatusCmd = &cobra.Command{
	Use:               "set-default-status <single|mfj>",
	Short:             "Set the default filing status",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: statusCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		status, err := tax.ParseFilingStatus(args[0])
		if err != nil {
			fail("%v", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fail("Error loading configuration: %v", err)
		}

		cfg.DefaultFilingStatus = string(status)
		if err := config.SaveConfig(cfg); err != nil {
			fail("Error saving configuration: %v", err)
		}
		successColor.Printf("Default filing status set to: %s\n", status.Description())
	},
}

var configGetStatusCmd = &cobra.Command{
	Use:   "get-default-status",
	Short: "Show the configured default filing status",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fail("Error loading configuration: %v", err)
		}

		if cfg.DefaultFilingStatus == "" {
			dimColor.Println("No default filing status configured (single is assumed).")
			return
		}
		fmt.Println(cfg.DefaultFilingStatus)
	},
}

var configSetStateCmd = &cobra.Command{
	Use:               "set-default-state <code>",
	Short:             "Set the default state for the state tax line",
	Long:              `Sets the state used when --state or the wizard's state answer is omitted. Pass an empty string to unset: taxcalc config set-default-state ""`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: stateCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		code := statetax.Normalize(args[0])
		if code != "" && statetax.Lookup(code) == statetax.KindUnknown {
			fail("Unknown state %q", args[0])
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fail("Error loading configuration: %v", err)
		}

		cfg.DefaultState = code
		if err := config.SaveConfig(cfg); err != nil {
			fail("Error saving configuration: %v", err)
		}

		if code == "" {
			successColor.Println("Default state unset.")
		} else {
			successColor.Printf("Default state set to: %s\n", code)
		}
	},
}

var configGetStateCmd = &cobra.Command{
	Use:   "get-default-state",
	Short: "Show the configured default state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fail("Error loading configuration: %v", err)
		}

		if cfg.DefaultState == "" {
			dimColor.Println("No default state configured.")
			return
		}
		fmt.Println(cfg.DefaultState)
	},
}

func init() {
	configCmd.AddCommand(configSetStatusCmd)
	configCmd.AddCommand(configGetStatusCmd)
	configCmd.AddCommand(configSetStateCmd)
	configCmd.AddCommand(configGetStateCmd)
}

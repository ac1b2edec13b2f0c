// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taxcalc/internal/logger"
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	labelColor   = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	amountColor  = color.New(color.FgBlue)
	dimColor     = color.New(color.Faint)
)

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "Estimated U.S. federal income tax calculator",
	Long: `A command-line calculator for estimated U.S. federal income tax.

Computes tax over the 2025 progressive bracket tables for single or
married-filing-jointly filers, using the standard deduction or a custom
one, and reports marginal and effective rates. Run without arguments for
an interactive wizard.

Defaults and bracket table overrides are read from
` + "~/.config/taxcalc/config.yaml" + ` (see the config subcommands).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitLogger(false)
	},
}

func RunCLI() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(bracketsCmd)
	rootCmd.AddCommand(statesCmd)
	rootCmd.AddCommand(configCmd)
}

// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"taxcalc/internal/config"
	"taxcalc/internal/money"
	"taxcalc/internal/statetax"
	"taxcalc/internal/tax"
)

var bracketsCmd = &cobra.Command{
	Use:   "brackets [single|mfj]",
	Short: "Show the bracket tables and standard deductions in effect",
	Long: `Prints the progressive bracket table and standard deduction for the given
filing status, or for both statuses when none is given. Overrides from the
config file are reflected here.`,
	Example:           "  taxcalc brackets\n  taxcalc brackets mfj",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: statusCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fail("Error loading configuration: %v", err)
		}

		statuses := tax.FilingStatuses
		if len(args) == 1 {
			status, err := tax.ParseFilingStatus(args[0])
			if err != nil {
				fail("%v", err)
			}
			statuses = []tax.FilingStatus{status}
		}

		for i, status := range statuses {
			if i > 0 {
				fmt.Println()
			}
			table, err := cfg.TableFor(status)
			if err != nil {
				fail("%v", err)
			}
			printTable(table)
		}
	},
}

func printTable(table tax.Table) {
	statusColor.Printf("%s\n", table.Status.Description())
	fmt.Printf("Standard deduction: %s\n", money.FormatUSD(table.StandardDeduction))
	for _, b := range table.Brackets {
		if math.IsInf(b.Upper, 1) {
			fmt.Printf("  %3s  %s and up\n", money.FormatPercent(b.Rate, 0), money.FormatUSDWhole(b.Lower))
		} else {
			fmt.Printf("  %3s  %s to %s\n", money.FormatPercent(b.Rate, 0), money.FormatUSDWhole(b.Lower), money.FormatUSDWhole(b.Upper))
		}
	}
}

var statesCmd = &cobra.Command{
	Use:   "states [code...]",
	Short: "Show the state income tax system for one or all states",
	Long: `Shows whether a state has no income tax, a flat tax, or a graduated tax.
Only the no-income-tax states are assessed in summaries; flat and graduated
systems are listed for reference.`,
	Example:           "  taxcalc states\n  taxcalc states TX ca 'new hampshire'",
	ValidArgsFunction: stateCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		codes := args
		if len(codes) == 0 {
			codes = statetax.Codes()
		}

		for _, raw := range codes {
			code := statetax.Normalize(raw)
			kind := statetax.Lookup(code)
			switch kind {
			case statetax.KindNone:
				fmt.Printf("%s  %s\n", code, successColor.Sprint("no income tax"))
			case statetax.KindUnknown:
				fmt.Printf("%s  %s\n", code, errorColor.Sprint("unknown"))
			default:
				fmt.Printf("%s  %s\n", code, kind)
			}
		}
	},
}

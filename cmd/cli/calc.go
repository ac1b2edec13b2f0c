// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taxcalc/internal/config"
	"taxcalc/internal/logger"
	"taxcalc/internal/money"
	"taxcalc/internal/statetax"
	"taxcalc/internal/tax"
)

var (
	calcIncomeFlag    string
	calcStatusFlag    string
	calcDeductionFlag string
	calcStateFlag     string
	calcNoBreakdown   bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute federal tax for a given income",
	Long: `Computes estimated federal income tax, marginal rate, and effective rate.

Amounts may include a dollar sign and thousands separators. The standard
deduction for the filing status applies unless --deduction is given.`,
	Example: `  taxcalc calc --income 85,000
  taxcalc calc --income 120000 --status mfj --state TX
  taxcalc calc --income 85000 --deduction 22,500 --no-breakdown`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fail("Error loading configuration: %v", err)
		}

		statusArg := calcStatusFlag
		if statusArg == "" {
			statusArg = cfg.DefaultFilingStatus
		}
		if statusArg == "" {
			statusArg = string(tax.FilingSingle)
		}
		status, err := tax.ParseFilingStatus(statusArg)
		if err != nil {
			fail("%v", err)
		}

		income, err := money.ParseAmount(calcIncomeFlag)
		if err != nil {
			fail("Invalid --income: %v", err)
		}

		in := tax.Input{GrossIncome: income, Status: status}
		if cmd.Flags().Changed("deduction") {
			deduction, err := money.ParseAmount(calcDeductionFlag)
			if err != nil {
				fail("Invalid --deduction: %v", err)
			}
			in.Deduction = &deduction
		}

		table, err := cfg.TableFor(status)
		if err != nil {
			fail("%v", err)
		}

		result, err := tax.ComputeWithTable(in, table)
		if err != nil {
			if errors.Is(err, tax.ErrInvalidInput) {
				fail("%v", err)
			}
			fail("Calculation failed: %v", err)
		}

		if !calcNoBreakdown {
			printBreakdown(result)
			fmt.Println()
		}
		printSummary(result, strings.TrimSpace(firstNonEmpty(calcStateFlag, cfg.DefaultState)))
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcIncomeFlag, "income", "i", "", "gross income (required)")
	calcCmd.Flags().StringVarP(&calcStatusFlag, "status", "s", "", "filing status: single or mfj (default from config, else single)")
	calcCmd.Flags().StringVarP(&calcDeductionFlag, "deduction", "d", "", "custom deduction; omit to use the standard deduction")
	calcCmd.Flags().StringVar(&calcStateFlag, "state", "", "two-letter state code for the state tax line")
	calcCmd.Flags().BoolVar(&calcNoBreakdown, "no-breakdown", false, "suppress the per-bracket breakdown")
	_ = calcCmd.MarkFlagRequired("income")
	_ = calcCmd.RegisterFlagCompletionFunc("status", statusFlagCompletionFunc)
	_ = calcCmd.RegisterFlagCompletionFunc("state", stateFlagCompletionFunc)
}

// fail reports an error to the user and the log, then exits non-zero.
func fail(format string, v ...any) {
	errorColor.Fprintf(os.Stderr, format+"\n", v...)
	logger.Errorf(format, v...)
	os.Exit(1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printBreakdown(result tax.Result) {
	labelColor.Println("Federal Tax Bracket Breakdown")
	dimColor.Println(strings.Repeat("-", 50))
	for _, share := range result.Breakdown {
		upperText := "and up"
		if !math.IsInf(share.Upper, 1) {
			upperText = money.FormatUSDWhole(share.Upper)
		}
		fmt.Printf("%s on %s to %s: taxed %s -> %s\n",
			money.FormatPercent(share.Rate, 0),
			money.FormatUSDWhole(share.Lower),
			upperText,
			money.FormatUSD(share.Amount),
			amountColor.Sprint(money.FormatUSD(share.Tax)))
	}
	if len(result.Breakdown) == 0 {
		dimColor.Println("No taxable income.")
	}
	dimColor.Println(strings.Repeat("-", 50))
}

func printSummary(result tax.Result, stateInput string) {
	statusColor.Println("Federal Tax Summary (Simplified)")
	fmt.Printf("Filing status: %s\n", result.Status.Description())
	fmt.Printf("Gross income: %s\n", money.FormatUSD(result.GrossIncome))
	fmt.Printf("Deduction used: %s - %s\n", result.DeductionLabel(), money.FormatUSD(result.Deduction))
	fmt.Printf("Taxable income: %s\n", money.FormatUSD(result.TaxableIncome))
	fmt.Printf("Total federal income tax: %s\n", successColor.Sprint(money.FormatUSD(result.TotalTax)))
	if stateInput != "" {
		code := statetax.Normalize(stateInput)
		assessment := statetax.Assess(result.TaxableIncome, code)
		if assessment.Computed {
			fmt.Printf("State income tax (%s): %s (%s)\n", code, money.FormatUSD(assessment.Tax), assessment.Label)
		} else {
			fmt.Printf("State income tax (%s): %s\n", code, assessment.Label)
		}
	}
	fmt.Printf("Marginal tax rate: %s\n", money.FormatPercent(result.MarginalRate, 0))
	fmt.Printf("Effective tax rate: %s\n", money.FormatPercent(result.EffectiveRate, 2))
	fmt.Printf("After-tax income (federal only): %s\n", money.FormatUSD(result.AfterTaxIncome))
}

// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"taxcalc/internal/statetax"
	"taxcalc/internal/tax"
)

// statusCompletionFunc suggests filing status values for positional args.
func statusCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return statusFlagCompletionFunc(cmd, args, toComplete)
}

// statusFlagCompletionFunc suggests filing status values for the --status flag.
func statusFlagCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var suggestions []string
	for _, status := range tax.FilingStatuses {
		if strings.HasPrefix(string(status), toComplete) {
			suggestions = append(suggestions, string(status))
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// stateCompletionFunc suggests two-letter state codes.
func stateCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := strings.ToUpper(toComplete)
	var suggestions []string
	for _, code := range statetax.Codes() {
		if strings.HasPrefix(code, prefix) {
			suggestions = append(suggestions, code)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// stateFlagCompletionFunc suggests state codes for the --state flag.
func stateFlagCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return stateCompletionFunc(cmd, nil, toComplete)
}

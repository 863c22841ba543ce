// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:    "termstyle",
	Short:  "Detect terminal color support and preview ANSI text styles",
	Long:   ``,
	PreRun: onCommandStart,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	rootCmd.Version = v
	rootCmd.SetVersionTemplate(`{{printf "termstyle version %s\n" .Version}}`)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {

	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "When to emit color: auto, always or never")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log detection decisions to stderr")

	// Register completion for --color flag
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(reportCommand)
	rootCmd.AddCommand(demoCommand)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCommand)
}

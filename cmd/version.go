package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of termstyle",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termstyle version %s\n", rootCmd.Version)
	},
}

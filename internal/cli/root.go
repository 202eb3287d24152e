// Package cli implements the filesend command line.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCmd builds the filesend command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "filesend",
		Short:         "Sign and send document files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a TOML config file")

	root.AddCommand(newSendCmd(), newKeygenCmd(), newVersionCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("filesend version %s\n", version)
		},
	}
}

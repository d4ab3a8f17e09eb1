package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the voicetask command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "voicetask",
		Short: "Developer tools for the voice task interpreter.",
		Long: `voicetask runs the transcript interpreter locally, without the API server,
so phrasing and date rules can be checked quickly.`,
		SilenceUsage: true,
	}

	root.AddCommand(newParseCmd())
	return root
}

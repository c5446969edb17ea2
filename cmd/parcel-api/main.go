// Command parcel-api runs the parcel intake HTTP service.
//
//	parcel-api            # same as "parcel-api serve"
//	parcel-api serve
//	parcel-api migrate
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:          "parcel-api",
		Short:        "Parcel intake API",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newMigrateCommand())
	return root
}

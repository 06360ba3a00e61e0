package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/breeew/aicare-api/cmd/knowledge"
	"github.com/breeew/aicare-api/cmd/records"
	"github.com/breeew/aicare-api/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:          "aicare",
		Short:        "health journal and patient summary api",
		SilenceUsage: true,
	}

	root.AddCommand(service.NewCommand())
	root.AddCommand(knowledge.NewCommand())
	root.AddCommand(records.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

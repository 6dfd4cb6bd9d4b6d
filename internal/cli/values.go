package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "values <filter>",
		Short: "Resolve the selectable values for a filter",
		Args:  cobra.ExactArgs(1),
		Run:   runValues,
	}
	RootCmd.AddCommand(cmd)
}

func runValues(cmd *cobra.Command, args []string) {
	imp, err := newImporter()
	if err != nil {
		exitErr("create importer", err)
	}

	values, err := imp.ResolveFilterValues(context.Background(), args[0])
	if err != nil {
		exitErr("resolve filter values", err)
	}

	for _, v := range values {
		fmt.Printf("%s\t%s\n", v.Value, v.Text)
	}
}

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Show the filters the importer declares",
		Run:   runFilters,
	}
	RootCmd.AddCommand(cmd)
}

func runFilters(cmd *cobra.Command, args []string) {
	imp, err := newImporter()
	if err != nil {
		exitErr("create importer", err)
	}

	filters := imp.DeclareFilters()

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := filters[name]
		required := ""
		if f.Required {
			required = " (required)"
		}
		fmt.Printf("%s\t%s\t%s%s\n", f.Name, f.Kind, f.Title, required)
	}
}

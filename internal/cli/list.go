package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caselink/caselink/internal/connector/salesforce"
	"github.com/caselink/caselink/internal/extension"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List importable case candidates for a filter selection",
		Run:   runList,
	}

	cmd.Flags().String("list-view", "", "Saved view id (saved-view strategy)")
	cmd.Flags().String("category", "", "Case category: open or closed (static-category strategy)")
	cmd.Flags().Bool("render", false, "Print the HTML summary for each candidate")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	listView, _ := cmd.Flags().GetString("list-view")
	category, _ := cmd.Flags().GetString("category")
	renderFlag, _ := cmd.Flags().GetBool("render")

	imp, err := newImporter()
	if err != nil {
		exitErr("create importer", err)
	}

	sel := extension.FilterSelection{}
	if listView != "" {
		sel[salesforce.FilterListView] = listView
	}
	if category != "" {
		sel[salesforce.FilterCategory] = category
	}

	candidates, err := imp.ListCandidates(context.Background(), sel)
	if err != nil {
		exitErr("list candidates", err)
	}

	for _, rec := range candidates {
		if renderFlag {
			fmt.Println(imp.Render(rec))
			continue
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", rec.UniqueID, rec.CaseNumber, rec.Status, rec.Name)
	}
}

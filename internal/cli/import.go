package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caselink/caselink/internal/connector/salesforce"
	"github.com/caselink/caselink/internal/extension"
	"github.com/caselink/caselink/internal/host"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <case-id>",
		Short: "Import one listed case into a host record",
		Long:  "Re-lists candidates for the given selection, picks the case by id, and runs the import. The composed record is written to stdout by the harness persister.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	cmd.Flags().String("list-view", "", "Saved view id (saved-view strategy)")
	cmd.Flags().String("category", "", "Case category: open or closed (static-category strategy)")
	cmd.Flags().String("record-id", "", "Host record id to write into")
	cmd.Flags().String("record-name", "", "Host record name")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	caseID := args[0]
	listView, _ := cmd.Flags().GetString("list-view")
	category, _ := cmd.Flags().GetString("category")
	recordID, _ := cmd.Flags().GetString("record-id")
	recordName, _ := cmd.Flags().GetString("record-name")

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

	ctx := context.Background()
	candidates, err := imp.ListCandidates(ctx, sel)
	if err != nil {
		exitErr("list candidates", err)
	}

	for _, rec := range candidates {
		if rec.UniqueID != caseID {
			continue
		}
		target := &host.Record{ID: recordID, Name: recordName}
		if target.Name == "" {
			target.Name = rec.Name
		}
		if err := imp.ImportRecord(ctx, rec, target); err != nil {
			exitErr("import record", err)
		}
		return
	}

	exitErr("import record", fmt.Errorf("case %s not in current listing", caseID))
}

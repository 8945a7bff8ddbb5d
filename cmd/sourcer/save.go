package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lsrecruit/sourcer/internal/savedsearch"
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Persist the working list as a named saved search",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}

	req, err := savedsearch.Encode(engine.Working(), args[0], engine.Keywords())
	if err != nil {
		return err
	}
	if err := a.client.SaveSearch(cmd.Context(), req); err != nil {
		return a.surface(err)
	}

	fmt.Printf("Saved %q with %d companies.\n", req.SearchName, len(req.CompanyIDs))
	return nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lsrecruit/sourcer/internal/savedsearch"
	"github.com/lsrecruit/sourcer/internal/worklist"
)

var searchesCmd = &cobra.Command{
	Use:   "searches",
	Short: "Work with saved searches",
}

var searchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved searches",
	RunE:  runSearchesList,
}

var searchesLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Replace the working list with a saved search",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchesLoad,
}

var searchesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved search",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchesDelete,
}

func init() {
	searchesCmd.AddCommand(searchesListCmd)
	searchesCmd.AddCommand(searchesLoadCmd)
	searchesCmd.AddCommand(searchesDeleteCmd)
	rootCmd.AddCommand(searchesCmd)
}

func runSearchesList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	searches, err := a.client.SavedSearches(cmd.Context())
	if err != nil {
		return a.surface(err)
	}
	if len(searches) == 0 {
		fmt.Println("No saved searches.")
		return nil
	}
	for _, s := range searches {
		fmt.Printf("%-5d %-30s %3d companies  %s\n", s.ID, s.SearchName, len(s.CompanyIDs), s.CreatedAt)
	}
	return nil
}

func runSearchesLoad(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("saved-search id must be an integer, got %q", args[0])
	}

	detail, err := a.client.SavedSearch(cmd.Context(), id)
	if err != nil {
		return a.surface(err)
	}

	list, keywords := savedsearch.Decode(detail)
	if err := a.sessions.Save(&worklist.Session{Companies: list, Keywords: keywords}); err != nil {
		return err
	}

	fmt.Printf("Loaded saved search %d.\n", id)
	printWorkingList(list)
	return nil
}

func runSearchesDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("saved-search id must be an integer, got %q", args[0])
	}

	if err := a.client.DeleteSavedSearch(cmd.Context(), id); err != nil {
		return a.surface(err)
	}
	fmt.Printf("Deleted saved search %d.\n", id)
	return nil
}

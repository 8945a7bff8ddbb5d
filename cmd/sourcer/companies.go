package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lsrecruit/sourcer/internal/types"
)

var addCmd = &cobra.Command{
	Use:   "add <company-id|company-name>",
	Short: "Manually add a company from the directory to the working list",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <company-id>",
	Short: "Remove a company from the working list",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current working list",
	RunE:  runList,
}

var availableCmd = &cobra.Command{
	Use:   "available",
	Short: "Show directory companies still selectable for manual adding",
	RunE:  runAvailable,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(availableCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}

	directory, err := a.client.AllCompanies(cmd.Context())
	if err != nil {
		return a.surface(err)
	}

	companyID := resolveCompanyID(args[0], directory)
	before := len(engine.Working())
	list := engine.AddManual(companyID, directory)
	if len(list) == before {
		fmt.Printf("Nothing added: %q is unknown or already in the list.\n", args[0])
		return nil
	}

	if err := a.persist(engine); err != nil {
		return err
	}
	printWorkingList(list)
	return nil
}

func runRemove(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}

	before := len(engine.Working())
	list := engine.RemoveManual(args[0])
	if len(list) == before {
		fmt.Printf("No company with id %q in the working list.\n", args[0])
		return nil
	}

	if err := a.persist(engine); err != nil {
		return err
	}
	printWorkingList(list)
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}
	printWorkingList(engine.Working())
	if keywords := engine.Keywords(); keywords != "" {
		fmt.Printf("Keywords: %s\n", keywords)
	}
	return nil
}

func runAvailable(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}

	directory, err := a.client.AllCompanies(cmd.Context())
	if err != nil {
		return a.surface(err)
	}

	available := engine.AvailableForManualSelection(directory)
	for _, rec := range available {
		fmt.Printf("%-6s %s\n", rec.ID, rec.Name)
	}
	fmt.Printf("%d of %d companies selectable\n", len(available), len(directory))
	return nil
}

// resolveCompanyID accepts either a directory id or an exact company name.
func resolveCompanyID(arg string, directory []types.CompanyRecord) string {
	for _, rec := range directory {
		if rec.ID == arg {
			return arg
		}
	}
	for _, rec := range directory {
		if strings.EqualFold(rec.Name, arg) {
			return rec.ID
		}
	}
	return arg
}

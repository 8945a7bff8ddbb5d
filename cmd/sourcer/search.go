package main

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lsrecruit/sourcer/internal/filters"
	"github.com/lsrecruit/sourcer/internal/types"
)

var (
	searchModels    []string
	searchLocations []string
	searchKeywords  string
	searchSizeFrom  int
	searchSizeTo    int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a filtered company search and merge it into the working list",
	Long: `Run a filtered company search. Fresh results replace previous search hits
in the working list; manually added companies survive unless the new results
already contain them.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchModels, "models", nil, "Business-model category names")
	searchCmd.Flags().StringSliceVar(&searchLocations, "locations", nil, "Location names to filter by")
	searchCmd.Flags().StringVar(&searchKeywords, "keywords", "", "Free-text keywords carried with the list")
	searchCmd.Flags().IntVar(&searchSizeFrom, "size-from", 0, "Minimum employee count (default: directory minimum)")
	searchCmd.Flags().IntVar(&searchSizeTo, "size-to", 0, "Maximum employee count (default: directory maximum)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	// The three catalogs are independent; load them together.
	var (
		modelNames []string
		bounds     types.EmployeeCountRange
		locations  []types.Location
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		modelNames, err = a.client.BusinessModels(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		bounds, err = a.client.EmployeeCountRange(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		locations, err = a.client.Locations(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return a.surface(err)
	}

	catalog := make([]types.BusinessModel, len(modelNames))
	for i, name := range modelNames {
		catalog[i] = types.BusinessModel{ID: i, Name: name}
	}

	selected, unknown := resolveCategoryIDs(searchModels, catalog)
	for _, name := range unknown {
		log.Printf("ignoring unknown business model %q", name)
	}

	// The employee-count range defaults to the directory-wide bounds when
	// the user does not narrow it; this is the one place defaulting
	// happens.
	size := filters.SizeRange{From: bounds.Min, To: bounds.Max}
	if cmd.Flags().Changed("size-from") {
		size.From = searchSizeFrom
	}
	if cmd.Flags().Changed("size-to") {
		size.To = searchSizeTo
	}

	searchFilters := filters.Build(selected, catalog, size)
	codes, unknownLocations := resolveLocationCodes(searchLocations, locations)
	for _, name := range unknownLocations {
		log.Printf("ignoring unknown location %q", name)
	}
	searchFilters = filters.WithLocations(searchFilters, codes)

	if a.cfg.Verbose {
		log.Printf("[SEARCH] query: %s", searchFilters.QueryValues().Encode())
	}

	list, err := engine.RunSearch(ctx, searchFilters, strings.TrimSpace(searchKeywords))
	if err != nil {
		return a.surface(err)
	}
	if err := a.persist(engine); err != nil {
		return err
	}

	printWorkingList(list)
	return nil
}

// resolveCategoryIDs maps user-supplied category names to catalog ids,
// case-insensitively. Unknown names are reported, not fatal.
func resolveCategoryIDs(names []string, catalog []types.BusinessModel) (ids []int, unknown []string) {
	for _, name := range names {
		found := false
		for _, category := range catalog {
			if strings.EqualFold(strings.TrimSpace(name), category.Name) {
				ids = append(ids, category.ID)
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return ids, unknown
}

// resolveLocationCodes maps user-supplied location names to their codes.
func resolveLocationCodes(names []string, locations []types.Location) (codes []string, unknown []string) {
	for _, name := range names {
		found := false
		for _, location := range locations {
			if strings.EqualFold(strings.TrimSpace(name), location.LocationName) {
				codes = append(codes, location.LocationCode)
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return codes, unknown
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lsrecruit/sourcer/internal/deeplink"
	"github.com/lsrecruit/sourcer/internal/types"
	"github.com/lsrecruit/sourcer/internal/worklist"
)

var (
	openGeoCodes []string
	openPrint    bool
	openWatch    bool
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a LinkedIn people search for the working list",
	Long: `Build the LinkedIn people-search deep link for the working list's
companies and keywords and open it in the managed browser tab. With --watch
the command keeps running and re-navigates the same tab whenever the working
list changes.`,
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringSliceVar(&openGeoCodes, "geo", nil, "LinkedIn geo codes for the geoUrn filter")
	openCmd.Flags().BoolVar(&openPrint, "print", false, "Print the URL instead of opening a tab")
	openCmd.Flags().BoolVar(&openWatch, "watch", false, "Keep the tab open and follow working-list changes")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	session, err := a.sessions.Load()
	if err != nil {
		return err
	}

	url, err := sessionURL(session)
	if err != nil {
		return err
	}
	if openPrint {
		fmt.Println(url)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opener := deeplink.NewOpener(a.cfg.Verbose)
	defer opener.Close()

	if err := opener.Open(ctx, url); err != nil {
		return err
	}
	if !openWatch {
		// Give the detached browser a moment to take over the process
		// of rendering before the command returns.
		time.Sleep(time.Second)
		return nil
	}

	fmt.Println("Watching working list; Ctrl-C to stop.")
	return followSession(ctx, a.sessions, opener, url)
}

// followSession re-opens the managed tab whenever the session's deep link
// changes. The tab handle is reused, never multiplied.
func followSession(ctx context.Context, sessions *worklist.Store, opener *deeplink.Opener, lastURL string) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			session, err := sessions.Load()
			if err != nil {
				log.Printf("failed to reload session: %v", err)
				continue
			}
			url, err := sessionURL(session)
			if err != nil {
				// An emptied list is not fatal in watch mode; keep
				// the last view until it fills again.
				continue
			}
			if url == lastURL {
				continue
			}
			if err := opener.Open(ctx, url); err != nil {
				return err
			}
			lastURL = url
		}
	}
}

// sessionURL builds the deep link for the current session state.
func sessionURL(session *worklist.Session) (string, error) {
	identifiers := make([]string, 0, len(session.Companies))
	for _, rec := range session.Companies {
		if rec.LinkedInID != "" {
			identifiers = append(identifiers, rec.LinkedInID)
		}
	}
	return deeplink.BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: identifiers,
		Keywords:           session.Keywords,
		LocationCodes:      openGeoCodes,
	})
}

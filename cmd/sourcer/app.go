package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lsrecruit/sourcer/internal/api"
	"github.com/lsrecruit/sourcer/internal/auth"
	"github.com/lsrecruit/sourcer/internal/config"
	"github.com/lsrecruit/sourcer/internal/types"
	"github.com/lsrecruit/sourcer/internal/worklist"
)

// app wires config, stores and the API client together for one command
// invocation.
type app struct {
	cfg      *config.Config
	tokens   *auth.Store
	client   *api.Client
	sessions *worklist.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	tokens := auth.NewStore(cfg.TokenPath)
	client := api.New(cfg.BaseURL, &api.Options{
		Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		Tokens:  tokens,
	})

	return &app{
		cfg:      cfg,
		tokens:   tokens,
		client:   client,
		sessions: worklist.NewStore(cfg.SessionPath),
	}, nil
}

// engine loads the persisted session into a fresh reconciliation engine.
func (a *app) engine() (*worklist.Engine, error) {
	session, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}
	engine := worklist.NewEngine(a.client)
	engine.Restore(session.Companies, session.Keywords)
	return engine, nil
}

// persist writes the engine's state back to the session file.
func (a *app) persist(engine *worklist.Engine) error {
	return a.sessions.Save(&worklist.Session{
		Companies: engine.Working(),
		Keywords:  engine.Keywords(),
	})
}

// surface converts collaborator failures into the message shown to the user.
// A 401 additionally clears the stored token so the next command starts at
// login.
func (a *app) surface(err error) error {
	if err == nil {
		return nil
	}
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		if clearErr := a.tokens.Clear(); clearErr != nil {
			return fmt.Errorf("%v (and failed to clear stored token: %v)", authErr, clearErr)
		}
		return fmt.Errorf("session expired; stored token cleared, run 'sourcer login' to continue")
	}
	return err
}

// printWorkingList renders the working list the way the page's right panel
// did: name, LinkedIn id, and provenance.
func printWorkingList(list []types.CompanyRecord) {
	if len(list) == 0 {
		fmt.Println("Working list is empty. Run 'sourcer search' or 'sourcer add'.")
		return
	}
	for _, rec := range list {
		marker := " "
		if rec.AddedManually {
			marker = "*"
		}
		fmt.Printf("%s %-6s %-40s linkedin:%s\n", marker, rec.ID, rec.Name, rec.LinkedInID)
	}
	fmt.Printf("%d companies (* = added manually)\n", len(list))
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a backend bearer token",
	Long: `Store the bearer token issued by the backend's login flow. The token is
read from --token, or from stdin when the flag is omitted.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored bearer token",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Bearer token issued by the backend")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	token := loginToken
	if token == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read token from stdin: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}

	if err := a.tokens.Save(token); err != nil {
		return err
	}
	if !a.tokens.LoggedIn() {
		fmt.Println("Warning: the stored token is already expired.")
	}
	fmt.Println("Token stored.")
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

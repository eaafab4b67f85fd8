package main

import (
	"fmt"
	"strings"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/backendclient"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/storage"
	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	var storagePath string

	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the bearer token sent to the remote backend",
	}
	authCmd.PersistentFlags().StringVar(&storagePath, "storage", "./data/local_storage.json", "file-backed local storage")

	openTokens := func() (*backendclient.TokenStore, error) {
		fs, err := storage.NewFileStorage(storagePath)
		if err != nil {
			return nil, err
		}
		return backendclient.NewTokenStore(fs), nil
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Set, clear or inspect the stored backend token",
	}

	setCmd := &cobra.Command{
		Use:   "set <token>",
		Short: "Store the token attached as Authorization: Bearer on backend calls",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(args[0])
			token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
			if token == "" {
				return fmt.Errorf("token must not be empty")
			}

			tokens, err := openTokens()
			if err != nil {
				return err
			}
			if err := tokens.SetToken(token); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "token stored")
			return err
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := openTokens()
			if err != nil {
				return err
			}
			tokens.Clear()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "token cleared")
			return err
		},
	}

	// status nunca imprime o token
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether a token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := openTokens()
			if err != nil {
				return err
			}

			state := "not set"
			if tokens.Token() != "" {
				state = "set"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "token "+state)
			return err
		},
	}

	tokenCmd.AddCommand(setCmd, clearCmd, statusCmd)
	authCmd.AddCommand(tokenCmd)
	return authCmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/storage"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	var storagePath string

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the persisted brand theme",
	}
	themeCmd.PersistentFlags().StringVar(&storagePath, "storage", "./data/local_storage.json", "file-backed local storage")

	// openStore carrega o tema persistido e o aplica ao documento
	openStore := func() (*theming.Store, *theming.StyleDocument, error) {
		fs, err := storage.NewFileStorage(storagePath)
		if err != nil {
			return nil, nil, err
		}

		document := theming.NewStyleDocument("")
		store := theming.NewStore(fs, document)
		store.Load()

		return store, document, nil
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), store.Current())
		},
	}

	setCmd := &cobra.Command{
		Use:   "set key=value...",
		Short: "Apply a partial update, e.g. primary_color=#ABCDEF",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partial, err := parseAssignments(args)
			if err != nil {
				return err
			}

			store, _, err := openStore()
			if err != nil {
				return err
			}

			theme, err := store.Update(partial)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), theme)
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}

			theme, err := store.Reset()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), theme)
		},
	}

	cssCmd := &cobra.Command{
		Use:   "css",
		Short: "Print the theme as a :root stylesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, document, err := openStore()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), document.CSS())
			return err
		},
	}

	themeCmd.AddCommand(showCmd, setCmd, resetCmd, cssCmd)
	return themeCmd
}

func parseAssignments(args []string) (map[string]any, error) {
	partial := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected key=value", arg)
		}
		partial[strings.TrimSpace(key)] = value
	}
	return partial, nil
}

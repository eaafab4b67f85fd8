package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/digisolai/digisol.ai-sub002/pkg/log"
	"github.com/digisolai/digisol.ai-sub002/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd monta a árvore de comandos; cada chamada cria flags novas
func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "campaignctl",
		Short:         "campaignctl - offline campaign, contact and theme tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "logrus level")
	rootCmd.AddCommand(newCampaignsCmd(), newContactsCmd(), newThemeCmd(), newAuthCmd())

	return rootCmd
}

func readJSONFile(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// writeJSONFile grava via arquivo temporário + rename para não deixar o arquivo pela metade
func writeJSONFile(path string, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".campaignctl-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func printJSON(w io.Writer, value any) error {
	_, err := fmt.Fprintln(w, utils.PrettyJson(value))
	return err
}

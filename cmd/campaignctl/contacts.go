package main

import (
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newContactsCmd() *cobra.Command {
	contactsCmd := &cobra.Command{
		Use:   "contacts",
		Short: "Find and merge duplicate contacts in a JSON file",
	}

	contactsCmd.AddCommand(newDuplicatesCmd(), newMergeCmd())
	return contactsCmd
}

func newDuplicatesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "List duplicate groups by email, name and company domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			var contacts []domain.Contact
			if err := readJSONFile(file, &contacts); err != nil {
				return err
			}

			groups := contacting.FindDuplicateGroups(contacts)

			return printJSON(cmd.OutOrStdout(), map[string]any{
				"groups": groups,
				"total":  len(groups),
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with a contact array")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newMergeCmd() *cobra.Command {
	var (
		file     string
		ids      []string
		masterID string
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Preview a merge and optionally commit it back to the file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var contacts []domain.Contact
			if err := readJSONFile(file, &contacts); err != nil {
				return err
			}

			result, err := contacting.PreviewMerge(contacts, ids, masterID, time.Now())
			if err != nil {
				return err
			}

			if write {
				remaining := contacting.ConfirmMerge(contacts, *result)
				if err := writeJSONFile(file, remaining); err != nil {
					return err
				}

				logrus.WithFields(logrus.Fields{
					"master_id": result.Merged.ID,
					"removed":   len(result.RemovedIDs),
				}).Info("campaignctl: merge committed")
			}

			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "JSON file with a contact array")
	flags.StringSliceVar(&ids, "ids", nil, "contact ids to merge (comma separated)")
	flags.StringVar(&masterID, "master", "", "id of the record whose fields win")
	flags.BoolVar(&write, "write", false, "write the merged list back to the file")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("ids")
	_ = cmd.MarkFlagRequired("master")

	return cmd
}

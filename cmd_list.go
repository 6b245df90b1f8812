package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type listResult struct {
	BackupFolder string           `json:"backupFolder"`
	Offset       int              `json:"offset"`
	Limit        int              `json:"limit"`
	Files        []EnumeratedFile `json:"files"`
	FileCount    int              `json:"fileCount"`
	HasMoreFiles bool             `json:"hasMoreFiles"`
	NextOffset   *int             `json:"nextOffset"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the files a retrieve would download",
	Long: `Resolve the backup folder and print the requested batch of matching files
without downloading them.`,
	Example: `  backupfetch list --host transfer.example.com --username sftp-user --company-code CO655 --limit 20`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := baseItem(cmd)
		if err != nil {
			return err
		}
		item := base.withDefaults(Item{})
		if err := item.validate(); err != nil {
			return err
		}

		folder, window, err := listWindow(item, dialConnector)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(listResult{
			BackupFolder: folder.Name,
			Offset:       window.Offset,
			Limit:        window.Limit,
			Files:        window.Page,
			FileCount:    len(window.Page),
			HasMoreFiles: window.HasMore,
			NextOffset:   window.NextOffset,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	addItemFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

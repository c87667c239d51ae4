package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourorg/cwsctl/internal/render"
	"github.com/yourorg/cwsctl/internal/webstore"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

func newInfoCmd(globals *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the draft metadata of the extension item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := buildClient(globals)
			if err != nil {
				return err
			}

			item, err := client.FetchItem(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch item: %w", err)
			}

			switch format {
			case formatJSON:
				return render.JSON(cmd.OutOrStdout(), item)
			case formatTable:
				return render.KeyValue(cmd.OutOrStdout(), itemPairs(item))
			default:
				return fmt.Errorf("unknown format %q (expected json or table)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: json|table")

	return cmd
}

func itemPairs(item webstore.Item) [][2]string {
	version := item.Version
	if version == "" {
		version = item.CRXVersion
	}
	return [][2]string{
		{"ID", orUnknown(item.ID)},
		{"Title", orUnknown(item.Title)},
		{"Status", orUnknown(strings.Join(item.Status, ", "))},
		{"Version", orUnknown(version)},
		{"Upload state", orUnknown(item.UploadState)},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

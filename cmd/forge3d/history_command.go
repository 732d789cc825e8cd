package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"forge3d/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var assetID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent downloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("download history is disabled in the configuration")
			}
			return ctx.withHistory(func(store *history.Store) error {
				var entries []history.Entry
				var lookupErr error
				if strings.TrimSpace(assetID) != "" {
					entries, lookupErr = store.ByAsset(context.Background(), strings.TrimSpace(assetID))
				} else {
					entries, lookupErr = store.Recent(context.Background(), limit)
				}
				if lookupErr != nil {
					return fmt.Errorf("read download history: %w", lookupErr)
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No downloads recorded")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					detail := entry.Detail
					if entry.Succeeded {
						detail = formatBytes(entry.Bytes)
					}
					rows = append(rows, []string{
						entry.CompletedAt.Local().Format(time.DateTime),
						entry.AssetID,
						truncateText(entry.AssetName, 32),
						yesNo(entry.Succeeded),
						truncateText(detail, 48),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Completed", "Asset", "Name", "OK", "Detail"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	cmd.Flags().StringVar(&assetID, "asset", "", "Show history for a single asset id")
	return cmd
}

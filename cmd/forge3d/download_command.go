package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"forge3d/internal/bridge"
	"forge3d/internal/forge3d"
	"forge3d/internal/history"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download <asset-id>",
		Short: "Download an asset as FBX into the staging directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			assetID := strings.TrimSpace(args[0])
			if assetID == "" {
				return fmt.Errorf("asset id is required")
			}

			dest := strings.TrimSpace(outPath)
			if dest == "" {
				dest = stagingDestination(cfg.Paths.StagingDir, forge3d.Asset{ID: assetID})
			}

			release, err := ctx.lockStaging()
			if err != nil {
				return err
			}
			defer release()

			return ctx.withSession(func(session *bridge.Session) error {
				return ctx.withHistory(func(store *history.Store) error {
					result := downloadOne(session, store, assetID, "", "", dest)
					out := cmd.OutOrStdout()
					if !result.succeeded {
						fmt.Fprintln(out, renderStatusLine("Download", statusError, result.detail, shouldColorize(out)))
						return fmt.Errorf("download asset %s: %s", assetID, result.detail)
					}
					fmt.Fprintln(out, renderStatusLine("Download", statusOK,
						fmt.Sprintf("%s (%s)", result.destPath, formatBytes(result.bytes)), shouldColorize(out)))
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination file path (defaults to <staging>/<asset-id>.fbx)")
	return cmd
}

func newImportAllCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-all <project-id>",
		Short: "Download every asset in a project into the staging directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			release, err := ctx.lockStaging()
			if err != nil {
				return err
			}
			defer release()

			return ctx.withSession(func(session *bridge.Session) error {
				listing := await(func(cb bridge.Callback[[]forge3d.Asset]) {
					session.ListAssets(args[0], cb)
				})
				if !listing.OK() {
					return fmt.Errorf("list assets: %s", listing.Reason())
				}
				assets := listing.Value()
				out := cmd.OutOrStdout()
				if len(assets) == 0 {
					fmt.Fprintln(out, "No assets to import")
					return nil
				}

				return ctx.withHistory(func(store *history.Store) error {
					type assetResult struct {
						asset  forge3d.Asset
						result downloadResult
					}

					// All downloads go through the session at once; its
					// in-flight set keeps duplicate ids to a single transfer.
					results := make(chan assetResult, len(assets))
					for _, asset := range assets {
						asset := asset
						dest := stagingDestination(cfg.Paths.StagingDir, asset)
						session.DownloadAsset(asset.ID, dest, func(outcome bridge.Outcome[string]) {
							result := downloadResult{destPath: dest, succeeded: outcome.OK(), detail: outcome.Reason()}
							if result.succeeded {
								result.destPath = outcome.Value()
								if info, err := os.Stat(result.destPath); err == nil {
									result.bytes = info.Size()
								}
							}
							results <- assetResult{asset: asset, result: result}
						})
					}

					colorize := shouldColorize(out)
					failures := 0
					for range assets {
						landed := <-results
						recordDownload(store, landed.asset.ID, args[0], landed.asset.Name, landed.result)
						if landed.result.succeeded {
							fmt.Fprintln(out, renderStatusLine(landed.asset.Name, statusOK,
								fmt.Sprintf("%s (%s)", landed.result.destPath, formatBytes(landed.result.bytes)), colorize))
							continue
						}
						failures++
						fmt.Fprintln(out, renderStatusLine(landed.asset.Name, statusError, landed.result.detail, colorize))
					}
					fmt.Fprintf(out, "Imported %d of %d assets\n", len(assets)-failures, len(assets))
					if failures > 0 {
						return fmt.Errorf("%d of %d downloads failed", failures, len(assets))
					}
					return nil
				})
			})
		},
	}
}

type downloadResult struct {
	destPath  string
	bytes     int64
	succeeded bool
	detail    string
}

// downloadOne runs a single download to completion and records it in the
// history ledger when a store is available.
func downloadOne(session *bridge.Session, store *history.Store, assetID, projectID, assetName, dest string) downloadResult {
	outcome := await(func(cb bridge.Callback[string]) {
		session.DownloadAsset(assetID, dest, cb)
	})

	result := downloadResult{destPath: dest, succeeded: outcome.OK(), detail: outcome.Reason()}
	if result.succeeded {
		result.destPath = outcome.Value()
		if info, err := os.Stat(result.destPath); err == nil {
			result.bytes = info.Size()
		}
	}

	recordDownload(store, assetID, projectID, assetName, result)
	return result
}

func recordDownload(store *history.Store, assetID, projectID, assetName string, result downloadResult) {
	if store == nil {
		return
	}
	_, _ = store.Append(context.Background(), history.Entry{
		AssetID:   assetID,
		ProjectID: projectID,
		AssetName: assetName,
		DestPath:  result.destPath,
		Bytes:     result.bytes,
		Succeeded: result.succeeded,
		Detail:    result.detail,
	})
}

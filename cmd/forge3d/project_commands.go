package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forge3d/internal/bridge"
	"forge3d/internal/forge3d"
)

func newProjectsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects on the Forge3D server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(session *bridge.Session) error {
				outcome := await(session.ListProjects)
				if !outcome.OK() {
					return fmt.Errorf("list projects: %s", outcome.Reason())
				}
				out := cmd.OutOrStdout()
				projects := outcome.Value()
				if len(projects) == 0 {
					fmt.Fprintln(out, "No projects found")
					return nil
				}
				rows := make([][]string, 0, len(projects))
				for _, project := range projects {
					rows = append(rows, []string{project.ID, project.Name})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Name"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assets <project-id>",
		Short: "List assets in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(session *bridge.Session) error {
				outcome := await(func(cb bridge.Callback[[]forge3d.Asset]) {
					session.ListAssets(args[0], cb)
				})
				if !outcome.OK() {
					return fmt.Errorf("list assets: %s", outcome.Reason())
				}
				out := cmd.OutOrStdout()
				assets := outcome.Value()
				if len(assets) == 0 {
					fmt.Fprintln(out, "No assets found")
					return nil
				}
				rows := make([][]string, 0, len(assets))
				for _, asset := range assets {
					rows = append(rows, []string{
						asset.ID,
						truncateText(asset.Name, 48),
						assetTypeLabel(asset.Type),
						asset.CreatedAt,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Name", "Type", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

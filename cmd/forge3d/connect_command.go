package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"forge3d/internal/bridge"
	"forge3d/internal/preflight"
)

func newConnectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Verify the Forge3D bridge and local environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Forge3D Connection", colorize) {
				fmt.Fprintln(out, line)
			}

			results := preflight.RunAll(context.Background(), cfg, client)
			failed := 0
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			if failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}

			return ctx.withSession(func(session *bridge.Session) error {
				outcome := await(session.ListProjects)
				if !outcome.OK() {
					return fmt.Errorf("list projects: %s", outcome.Reason())
				}
				fmt.Fprintln(out, renderStatusLine("Projects", statusInfo,
					fmt.Sprintf("%d available", len(outcome.Value())), colorize))
				return nil
			})
		},
	}
}

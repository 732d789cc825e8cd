package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forge3d/internal/bridge"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Fetch the raw material preset document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(session *bridge.Session) error {
				outcome := await(session.ListMaterialPresets)
				if !outcome.OK() {
					return fmt.Errorf("fetch material presets: %s", outcome.Reason())
				}
				fmt.Fprintln(cmd.OutOrStdout(), outcome.Value())
				return nil
			})
		},
	}
}

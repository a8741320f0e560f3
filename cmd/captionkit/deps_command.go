package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"captionkit/internal/deps"
	"captionkit/internal/services"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check the external binaries captionkit can use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			if jsonOut {
				if err := writeJSON(cmd, statuses); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(statuses))
				for _, status := range statuses {
					rows = append(rows, []string{status.Name, status.Command, dependencyState(status), status.Description})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable("", []string{"Dependency", "Command", "Status", "Used for"}, rows, nil))
			}
			if deps.MissingRequired(statuses) {
				return services.Wrap(services.ErrExternalTool, "deps", "check", "required dependency missing", nil)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print dependency status as JSON")
	return cmd
}

func dependencyState(status deps.Status) string {
	switch {
	case status.Available:
		return "ok (" + status.Path + ")"
	case status.Optional:
		return "missing (optional): " + status.Detail
	default:
		return "missing: " + status.Detail
	}
}

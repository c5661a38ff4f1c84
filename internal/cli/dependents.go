package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildgraph/internal/app"
)

type dependentsOptions struct {
	Workspace []string
	Direct    bool
}

func newDependentsCommand() *cobra.Command {
	opts := dependentsOptions{}
	cmd := &cobra.Command{
		Use:   "dependents <address>",
		Short: "Print the targets that depend on a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDependents(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.Workspace, "workspace", nil, "Workspace root(s)")
	cmd.Flags().BoolVar(&opts.Direct, "direct", false, "Only direct dependents instead of the reverse closure")

	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))

	return cmd
}

func runDependents(ctx context.Context, cmd *cobra.Command, opts dependentsOptions, address string) error {
	service := newAppService()
	result, err := service.Dependents(ctx, app.DependentsRequest{
		Workspace: resolveStrings(cmd, opts.Workspace, "workspace", "workspace"),
		Address:   address,
		Direct:    resolveBool(cmd, opts.Direct, "direct", "direct"),
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Addresses {
		fmt.Println(entry)
	}
	return nil
}

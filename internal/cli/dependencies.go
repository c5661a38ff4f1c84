package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildgraph/internal/app"
)

type dependenciesOptions struct {
	Workspace []string
	Direct    bool
}

func newDependenciesCommand() *cobra.Command {
	opts := dependenciesOptions{}
	cmd := &cobra.Command{
		Use:   "dependencies <address>",
		Short: "Print the dependencies of a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDependencies(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.Workspace, "workspace", nil, "Workspace root(s)")
	cmd.Flags().BoolVar(&opts.Direct, "direct", false, "Only direct dependencies instead of the transitive closure")

	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))

	return cmd
}

func runDependencies(ctx context.Context, cmd *cobra.Command, opts dependenciesOptions, address string) error {
	service := newAppService()
	result, err := service.Dependencies(ctx, app.DependenciesRequest{
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

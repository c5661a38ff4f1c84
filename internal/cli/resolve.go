package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildgraph/internal/app"
)

type resolveOptions struct {
	Workspace []string
	OutputDir string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the target graph and write build order outputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Workspace, "workspace", nil, "Workspace root(s)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")

	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Workspace: resolveStrings(cmd, opts.Workspace, "workspace", "workspace"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("resolved: %d targets, %d edges -> %s\n", result.TargetCount, result.EdgeCount, result.OutputDir)
	return nil
}

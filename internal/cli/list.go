package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildgraph/internal/app"
)

type listOptions struct {
	Workspace   []string
	IncludeTags []string
	ExcludeTags []string
	RootsOnly   bool
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List targets in topological order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Workspace, "workspace", nil, "Workspace root(s)")
	cmd.Flags().StringSliceVar(&opts.IncludeTags, "tag", nil, "Only list targets matching these tag patterns")
	cmd.Flags().StringSliceVar(&opts.ExcludeTags, "exclude-tag", nil, "Skip targets matching these tag patterns")
	cmd.Flags().BoolVar(&opts.RootsOnly, "roots", false, "Only list targets nothing depends on")

	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))

	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		Workspace:   resolveStrings(cmd, opts.Workspace, "workspace", "workspace"),
		IncludeTags: opts.IncludeTags,
		ExcludeTags: opts.ExcludeTags,
		RootsOnly:   resolveBool(cmd, opts.RootsOnly, "roots", "roots"),
	})
	if err != nil {
		return err
	}
	for _, address := range result.Addresses {
		fmt.Println(address)
	}
	return nil
}

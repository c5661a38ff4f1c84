package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildgraph/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize previously written resolve outputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("targets: %d\nedges: %d\n", result.TargetCount, result.EdgeCount)
	kinds := make([]string, 0, len(result.Kinds))
	for kind := range result.Kinds {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("  %s: %d\n", kind, result.Kinds[kind])
	}
	return nil
}

package commands

import (
	"github.com/hotpatchkit/dexopt/internal/app"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize [modules...]",
		Short: "Compile code modules into native artifacts",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			targetDir, _ := cmd.Flags().GetString("target-dir")
			isa, _ := cmd.Flags().GetString("isa")
			interpret, _ := cmd.Flags().GetBool("interpret")
			ui, _ := cmd.Flags().GetBool("ui")
			return c.app.Optimize(cmd.Context(), args, app.OptimizeOptions{
				TargetDir:      targetDir,
				InstructionSet: isa,
				Interpret:      interpret,
				UI:             ui,
			})
		},
	}
	cmd.Flags().StringP("target-dir", "t", "", "Directory receiving the optimized artifacts")
	cmd.Flags().String("isa", "", "Target instruction set (defaults to "+domain.DefaultInstructionSet+")")
	cmd.Flags().Bool("interpret", false, "Compile in interpret mode via the external compiler")
	cmd.Flags().Bool("ui", false, "Show an interactive progress view")
	return cmd
}

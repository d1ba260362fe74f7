package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/hyprconf/pkg/logging"
	"github.com/arthur-debert/hyprconf/pkg/paths"
	"github.com/arthur-debert/hyprconf/pkg/source"
	"github.com/arthur-debert/hyprconf/pkg/ui"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	var sortOutput bool

	cmd := &cobra.Command{
		Use:     "graph <file>",
		Short:   MsgGraphShort,
		Long:    MsgGraphLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.graph")

			root, err := paths.NormalizePath(args[0])
			if err != nil {
				return err
			}
			homeDir, err := paths.GetHomeDirectory()
			if err != nil {
				return err
			}

			logger.Info().Str("root", root).Msg("Collecting source graph")
			files := source.CollectGraph(root, homeDir)
			if sortOutput {
				sort.Strings(files)
			}

			format := ui.DetectFormat(os.Stdout)
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderPathList(MsgGraphTitle, files, format))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sortOutput, "sort", false, MsgFlagSort)

	return cmd
}

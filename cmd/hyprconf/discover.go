package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/hyprconf/pkg/logging"
	"github.com/arthur-debert/hyprconf/pkg/metadata"
	"github.com/arthur-debert/hyprconf/pkg/paths"
	"github.com/arthur-debert/hyprconf/pkg/ui"
	"github.com/spf13/cobra"
)

func newDiscoverCmd() *cobra.Command {
	var (
		configType string
		extensions []string
	)

	cmd := &cobra.Command{
		Use:     "discover <root>",
		Short:   MsgDiscoverShort,
		Long:    MsgDiscoverLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.discover")

			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if len(extensions) == 0 {
				extensions = settings.Discovery.Extensions
			}

			root, err := paths.NormalizePath(args[0])
			if err != nil {
				return err
			}

			spec := metadata.ForType(configType, extensions...)
			logger.Info().Str("root", root).Str("type", configType).Msg("Discovering config files")

			found := metadata.Discover(root, spec)
			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoFilesFound)
				return nil
			}

			format := ui.DetectFormat(os.Stdout)
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderPathList(MsgDiscoverTitle, found, format))
			return nil
		},
	}

	cmd.Flags().StringVar(&configType, "type", "", MsgFlagType)
	cmd.Flags().StringArrayVar(&extensions, "ext", nil, MsgFlagExt)
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/hyprconf/pkg/errors"
	"github.com/arthur-debert/hyprconf/pkg/logging"
	"github.com/arthur-debert/hyprconf/pkg/metadata"
	"github.com/arthur-debert/hyprconf/pkg/paths"
	"github.com/arthur-debert/hyprconf/pkg/ui"
	"github.com/spf13/cobra"
)

func newWhichCmd() *cobra.Command {
	var (
		configType string
		extensions []string
		fallback   string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:     "which <root>",
		Short:   MsgWhichShort,
		Long:    MsgWhichLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.which")

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
			fallbackPath, err := paths.NormalizePath(fallback)
			if err != nil {
				return err
			}

			spec := metadata.ForType(configType, extensions...)
			logger.Info().Str("root", root).Str("type", configType).Str("fallback", fallbackPath).
				Msg("Resolving config path")

			format := ui.DetectFormat(os.Stdout)

			if strict {
				resolved, ok := metadata.ResolvePathStrict(root, fallbackPath, spec)
				if !ok {
					return errors.Newf(errors.ErrNotFound, "no %s config found below %s", configType, root)
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderResolvedPath(resolved, true, format))
				return nil
			}

			resolved := metadata.ResolvePath(root, fallbackPath, spec)
			matched := metadata.FileMatches(resolved, spec)
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderResolvedPath(resolved, matched, format))
			return nil
		},
	}

	cmd.Flags().StringVar(&configType, "type", "", MsgFlagType)
	cmd.Flags().StringArrayVar(&extensions, "ext", nil, MsgFlagExt)
	cmd.Flags().StringVar(&fallback, "fallback", "", MsgFlagFallback)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("fallback")

	return cmd
}

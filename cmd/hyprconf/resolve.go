package main

import (
	"os"

	"github.com/arthur-debert/hyprconf/pkg/include"
	"github.com/arthur-debert/hyprconf/pkg/logging"
	"github.com/arthur-debert/hyprconf/pkg/paths"
	"github.com/arthur-debert/hyprconf/pkg/ui"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var (
		formatName string
		includeKey string
	)

	cmd := &cobra.Command{
		Use:     "resolve <file>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.resolve")

			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if includeKey == "" {
				includeKey = settings.Resolver.IncludeKey
			}
			if formatName == "" {
				formatName = settings.Output.Format
			}

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return err
			}

			root, err := paths.NormalizePath(args[0])
			if err != nil {
				return err
			}
			homeDir, err := paths.GetHomeDirectory()
			if err != nil {
				return err
			}

			logger.Info().Str("root", root).Str("includeKey", includeKey).Msg("Resolving includes")
			doc, err := include.Load(root, includeKey, homeDir)
			if err != nil {
				return err
			}

			out, err := ui.EncodeDocument(doc, format.Resolve(os.Stdout))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", MsgFlagFormat)
	cmd.Flags().StringVar(&includeKey, "include-key", "", MsgFlagIncludeKey)

	return cmd
}

package main

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "docs [topic]",
		Short:   MsgDocsShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := listTopics()
				if len(topics) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), MsgNoTopics)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgTopicsHeading)
				for _, topic := range topics {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", topic)
				}
				return nil
			}

			content, err := docsFS.ReadFile("docs/" + args[0] + ".md")
			if err != nil {
				return fmt.Errorf("unknown topic: %s", args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
			return nil
		},
	}
}

func listTopics() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil
	}

	var topics []string
	for _, entry := range entries {
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics
}

// renderMarkdown converts markdown to terminal output via glamour, falling
// back to the raw text when rendering fails or output is piped.
func renderMarkdown(content string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

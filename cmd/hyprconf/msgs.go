package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Config file graph resolver for hypr* tools"
	MsgGraphShort      = "List every file reachable through source directives"
	MsgResolveShort    = "Load a config file and merge its includes"
	MsgDiscoverShort   = "Find config files by metadata header"
	MsgWhichShort      = "Resolve the effective config file for a type"
	MsgDocsShort       = "Display documentation topics"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgNoFilesFound   = "No matching config files found."
	MsgGraphTitle     = "Sourced files:"
	MsgDiscoverTitle  = "Discovered config files:"
	MsgNoTopics       = "No documentation topics available."
	MsgTopicsHeading  = "Available topics:"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSort       = "Sort the output paths"
	MsgFlagFormat     = "Output format: auto, text, toml, json, yaml"
	MsgFlagIncludeKey = "Top-level key holding include expressions"
	MsgFlagType       = "Logical config type to match (e.g. theme, bar)"
	MsgFlagExt        = "Allowed file extension, repeatable (default from settings)"
	MsgFlagFallback   = "Conventional config path tried before discovery"
	MsgFlagStrict     = "Fail when no file satisfies the metadata spec"
)

// Long messages (multi-line descriptions)
const (
	MsgRootLong = `hyprconf resolves configuration file graphs for the hypr* tool family:
it follows source and include directives across files, merges structured
content, and identifies config files by their metadata header.`

	MsgGraphLong = `Graph walks the recursive source = "..." directive graph starting from
the given file and lists every reachable file exactly once. Cycles are
tolerated; unreadable files are listed but not descended into.`

	MsgResolveLong = `Resolve loads the given TOML config file, recursively resolves the
include directives declared under the include key, and prints the merged
document. Included tables merge key by key; scalar and array values from
later includes overwrite earlier ones. Cyclic includes are an error.`

	MsgDiscoverLong = `Discover walks the directory tree below root and lists every config file
whose extension and metadata header match the requested type. Files opt in
with a first line of "# hypr metadata" followed by "# type = <name>".`

	MsgWhichLong = `Which resolves the effective config file for a logical type: the fallback
path wins when it exists and matches the metadata spec, otherwise the first
discovered match below root is used, otherwise the fallback is printed
as-is. With --strict, absence of a matching file is an error instead.`
)

// MsgUsageTemplate is the custom usage template with formatting applied
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

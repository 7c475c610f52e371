package cli

import (
	"fmt"
	"io"
)

// flagInfo describes a single command flag for help output.
type flagInfo struct {
	Name string // "--config"
	Arg  string // "<path>", "" for bool
	Desc string
}

// commandInfo describes a command for help output.
type commandInfo struct {
	Name        string
	Summary     string // one-line for top-level listing
	Usage       string
	Description string
	Flags       []flagInfo
}

// commands is the ordered registry of all gloss commands.
var commands = []commandInfo{
	{
		Name:    "reorganize",
		Summary: "Normalize a glossary file (default command)",
		Usage:   "gloss reorganize <file>",
		Description: "Removes duplicate records, sorts by source and merges the targets of\n" +
			"records sharing a source. Writes <name>-reorganized.txt and\n" +
			"<name>-discarded-entries.txt next to the input. \"gloss <file>\" is\n" +
			"shorthand for this command.",
	},
	{
		Name:    "dedupe",
		Summary: "Remove duplicate lines from a text file",
		Usage:   "gloss dedupe <file>",
		Description: "Keeps the first occurrence of every line in its original order and\n" +
			"writes <name>-duplicates-removed.txt next to the input.",
	},
	{
		Name:    "check",
		Summary: "Run diagnostic checks on a glossary file",
		Usage:   "gloss check <file>",
		Description: "Reports invalid UTF-8, a byte-order mark, malformed lines, duplicate\n" +
			"records and sources with conflicting targets. Never modifies the file.\n" +
			"Exits 1 when an error-level check fails.",
	},
	{
		Name:    "extract",
		Summary: "Back up the glossary database and dump it to text files",
		Usage:   "gloss extract [--config <path>]",
		Description: "Copies the SQLite glossary database, appends to the backup log and\n" +
			"writes one tab-delimited file per glossary and per translation job.\n" +
			"Failures are collected, appended to the error log, and make the\n" +
			"command exit 1 after all steps have run.",
		Flags: []flagInfo{
			{"--config", "<path>", "Config file (default: $GLOSS_CONFIG or ./gloss.yaml)"},
		},
	},
	{
		Name:        "help",
		Summary:     "Show help for a command",
		Usage:       "gloss help [<command>]",
		Description: "Shows usage information. With no argument, lists all commands.\nWith a command name, shows detailed help for that command.",
	},
}

// findCommand returns the commandInfo for the given name, or nil.
func findCommand(name string) *commandInfo {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
	}
	return nil
}

// printTopLevelHelp writes the full command listing to w.
func printTopLevelHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: gloss [flags] <command> [args]")
	fmt.Fprintln(w, "       gloss [flags] <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-12s%s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	fmt.Fprintln(w, "  --quiet, -q     Suppress output")
	fmt.Fprintln(w, "  --verbose, -v   Show debug logs on stderr")
	fmt.Fprintln(w, "  --toon          Force TOON output format")
	fmt.Fprintln(w, "  --pretty        Force pretty output format")
	fmt.Fprintln(w, "  --json          Force JSON output format")
}

// printCommandHelp writes detailed help for one command to w.
func printCommandHelp(w io.Writer, cmd *commandInfo) {
	fmt.Fprintf(w, "Usage: %s\n\n", cmd.Usage)
	fmt.Fprintln(w, cmd.Description)
	if len(cmd.Flags) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	for _, f := range cmd.Flags {
		name := f.Name
		if f.Arg != "" {
			name += " " + f.Arg
		}
		fmt.Fprintf(w, "  %-18s%s\n", name, f.Desc)
	}
}

func (a *App) handleHelp(args []string) int {
	if len(args) == 0 {
		printTopLevelHelp(a.Stdout)
		return 0
	}
	cmd := findCommand(args[0])
	if cmd == nil {
		return a.fail(fmt.Errorf("Unknown command '%s'. Run 'gloss help' for usage.", args[0]))
	}
	printCommandHelp(a.Stdout, cmd)
	return 0
}

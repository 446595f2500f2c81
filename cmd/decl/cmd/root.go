// Package cmd implements the decl CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, snapshot, convert, tree).
package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/decl/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "decl",
	Short: "decl - declarative widget trees with hot reload",
	Long: `decl builds widget hierarchies from JSON, JSON5, YAML, TOML or XML
description files and rebuilds them whenever the file changes.

Use "decl <command> --help" for more information about a command.`,
	Usage: "decl <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	verbose := false
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("decl version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs
	errors.SetHandler(&errors.LogHandler{Verbose: verbose})

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Report dropped widgets and skipped attributes")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  decl.yaml in the current directory supplies window size, title,")
	fmt.Println("  source path, reload interval and snapshot path.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  decl run gui.json            Hot-reload gui.json, writing temp.svg")
	fmt.Println("  decl snapshot gui.yaml -o gui.png")
	fmt.Println("  decl convert gui.json gui.toml")
	fmt.Println("  decl tree gui.json5")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

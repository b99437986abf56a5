// Package cmd implements the owolayout commands.
//
// A root command dispatches to subcommands (tree, validate, types) that share
// the configuration loaded from owolayout.yaml.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-owo/owo/cmd/owolayout/internal/config"
	"github.com/go-owo/owo/cmd/owolayout/internal/demohost"
	"github.com/go-owo/owo/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(cfg *config.Resolved, args []string) error
}

var rootCmd = &Command{
	Name:  "owolayout",
	Short: "owolayout - inspect owo markup",
	Long: `owolayout loads owo UI markup, builds the component tree against a
demo host and lays it out in a virtual viewport.

Use "owolayout <command> --help" for more information about a command.`,
	Usage: "owolayout <command> [flags]",
}

var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	configDir := "."
	var filtered []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Printf("owolayout version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filtered = append(filtered, arg)
		case "--config-dir":
			if i+1 >= len(args) {
				return fmt.Errorf("--config-dir requires a directory path")
			}
			configDir = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config-dir=") {
				configDir = strings.TrimPrefix(arg, "--config-dir=")
				continue
			}
			filtered = append(filtered, arg)
		}
	}
	args = filtered

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	cfg, err := config.Resolve(configDir)
	if err != nil {
		return err
	}
	provider, err := logging.NewProvider(cfg.Logging)
	if err != nil {
		return err
	}
	logging.SetProvider(provider)
	restore := demohost.Install(cfg.Entities)
	defer restore()

	return cmd.Run(cfg, cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range ordered {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --config-dir DIR     Directory holding owolayout.yaml (default: .)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  owolayout tree screen.yaml              Print the arranged tree")
	fmt.Println("  owolayout tree --size 640x480 a.yaml    Use another viewport")
	fmt.Println("  owolayout validate ui/*.yaml            Check several documents")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

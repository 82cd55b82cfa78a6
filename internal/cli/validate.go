package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"stooda/internal/bank"
	"stooda/internal/config"
)

// runValidate builds the handler for the validate command. With no
// flags it validates the discovered config, matching running it from a
// project directory.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Question bank to validate")
		configPath := flags.String("config", "", "Path to config file (default: search for stooda.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		checkConfig := strings.TrimSpace(*bankPath) == "" || strings.TrimSpace(*configPath) != ""
		if checkConfig {
			resolved, err := resolveConfigPath(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				return ExitError
			}
			if _, err := config.Load(resolved); err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Config OK")
		}

		if strings.TrimSpace(*bankPath) != "" {
			if _, err := bank.Load(*bankPath); err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Bank OK")
		}
		return ExitOK
	}
}

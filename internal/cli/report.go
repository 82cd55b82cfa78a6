package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"stooda/internal/bank"
	"stooda/internal/config"
	"stooda/internal/report"
)

func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		bankPath := fs.String("bank", config.DefaultBankFile, "Question bank to summarize")
		asJSON := fs.Bool("json", false, "Emit the summary as JSON")
		sample := fs.Bool("sample", false, "Print the first question as JSON")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		b, err := bank.Load(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load bank: %v\n", err)
			return ExitError
		}

		summary := report.Build(b.Questions)
		if *asJSON {
			enc := json.NewEncoder(stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(summary); err != nil {
				fmt.Fprintf(stderr, "Failed to encode summary: %v\n", err)
				return ExitError
			}
		} else {
			if b.Name != "" {
				fmt.Fprintf(stdout, "Bank: %s\n", b.Name)
			}
			summary.Render(stdout)
		}

		if *sample && len(b.Questions) > 0 {
			text, err := report.SampleJSON(b.Questions[0])
			if err != nil {
				fmt.Fprintf(stderr, "Failed to render sample: %v\n", err)
				return ExitError
			}
			fmt.Fprintln(stdout, "\nSample question:")
			fmt.Fprint(stdout, text)
		}
		return ExitOK
	}
}

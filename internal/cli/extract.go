package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"stooda/internal/bank"
	"stooda/internal/config"
	"stooda/internal/extract"
	"stooda/internal/logging"
)

func runExtract(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for stooda.yml)")
		documentPath := fs.String("document", "", "Exam document to extract (JSON or YAML)")
		outPath := fs.String("out", config.DefaultBankFile, "Bank file to write")
		imagesDir := fs.String("images-dir", "", "Directory name for extracted images")
		name := fs.String("name", "", "Bank name (default: the document's exam name)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if strings.TrimSpace(*documentPath) == "" {
			fmt.Fprintln(stderr, "Missing --document")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if strings.TrimSpace(*imagesDir) != "" {
			cfg.Images.Dir = strings.TrimSpace(*imagesDir)
		}

		logger, err := logging.New(cfg.Logging)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		doc, err := extract.LoadDocument(*documentPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load document: %v\n", err)
			return ExitError
		}

		absOut, err := filepath.Abs(*outPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve output path: %v\n", err)
			return ExitError
		}

		result, err := extract.New(cfg, logger).Extract(doc, filepath.Dir(absOut))
		if err != nil {
			fmt.Fprintf(stderr, "Extraction failed: %v\n", err)
			return ExitError
		}

		bankName := strings.TrimSpace(*name)
		if bankName == "" {
			bankName = doc.Exam.Name
		}
		if bankName == "" {
			base := filepath.Base(*documentPath)
			bankName = strings.TrimSuffix(base, filepath.Ext(base))
		}

		b := bank.New(bankName, result.Questions)
		b.Metadata = map[string]interface{}{
			"run_id": result.RunID,
			"source": filepath.Base(*documentPath),
		}
		b = bank.Normalize(b)
		if err := bank.Validate(b); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		if err := bank.Save(absOut, b); err != nil {
			fmt.Fprintf(stderr, "Failed to write bank: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed\n", result.RunID)
		fmt.Fprintf(stdout, "Bank: %s\n", absOut)
		result.Summary.Render(stdout)
		if result.Skipped > 0 {
			fmt.Fprintf(stdout, "Skipped: %d\n", result.Skipped)
		}
		return ExitOK
	}
}

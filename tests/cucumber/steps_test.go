package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stooda/internal/bank"
	"stooda/internal/cli"

	"github.com/cucumber/godog"
)

type featureState struct {
	workDir     string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an empty project directory$`, state.anEmptyProjectDirectory)
	ctx.Step(`^a project directory with a valid configuration$`, state.aProjectDirectoryWithValidConfig)
	ctx.Step(`^the configuration is invalid$`, state.theConfigurationIsInvalid)
	ctx.Step(`^an exam document "([^"]+)" with two sections$`, state.anExamDocumentWithTwoSections)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
	ctx.Step(`^the bank "([^"]+)" holds (\d+) questions$`, state.theBankHoldsQuestions)
	ctx.Step(`^the file "([^"]+)" exists$`, state.theFileExists)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}

// ensureProjectDir creates the scenario's working directory and makes
// it the CWD, so commands resolve relative paths the way a user would.
func (s *featureState) ensureProjectDir() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "stooda-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *featureState) anEmptyProjectDirectory() error {
	return s.ensureProjectDir()
}

func (s *featureState) aProjectDirectoryWithValidConfig() error {
	if err := s.ensureProjectDir(); err != nil {
		return err
	}
	return s.writeConfig(validConfigYAML())
}

func (s *featureState) theConfigurationIsInvalid() error {
	if err := s.ensureProjectDir(); err != nil {
		return err
	}
	return s.writeConfig(invalidConfigYAML())
}

func (s *featureState) anExamDocumentWithTwoSections(name string) error {
	if err := s.ensureProjectDir(); err != nil {
		return err
	}
	path := filepath.Join(s.workDir, name)
	if err := os.WriteFile(path, []byte(examDocumentYAML()), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "stooda" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got:\n%s", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

func (s *featureState) theBankHoldsQuestions(name string, count int) error {
	b, err := bank.Load(filepath.Join(s.workDir, name))
	if err != nil {
		return fmt.Errorf("load bank: %w", err)
	}
	if len(b.Questions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(b.Questions))
	}
	return nil
}

func (s *featureState) theFileExists(name string) error {
	if _, err := os.Stat(filepath.Join(s.workDir, name)); err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}
	return nil
}

func (s *featureState) writeConfig(contents string) error {
	if s.workDir == "" {
		return fmt.Errorf("project directory is not set")
	}
	path := filepath.Join(s.workDir, "stooda.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func validConfigYAML() string {
	return `version: 1

extraction:
  min_question_length: 5
  context_window: 500

images:
  dir: "question_images"
  max_per_question: 2
  page_lookahead: 5

defaults:
  exam_type: "vestibular"
  difficulty: "medium"

logging:
  level: "warn"
`
}

func invalidConfigYAML() string {
	return `version: 2

extraction:
  min_question_length: 5
  context_window: 500

defaults:
  exam_type: "vestibular"
  difficulty: "medium"

logging:
  level: "warn"
`
}

func examDocumentYAML() string {
	return `exam:
  name: "UFRGS 2024"
  type: "vestibular"
  date: "2024-01-15"
pages:
  - number: 1
    text: |
      FÍSICA

      1. Um corpo se move em linha reta com velocidade constante. Assinale a alternativa correta.
      (A) a resultante das forças sobre o corpo é nula
      (B) existe força resultante na direção do movimento
      (C) o corpo está necessariamente em queda livre
  - number: 2
    text: |
      MATEMÁTICA

      2. Considere a função dada por x^2 e avalie as afirmações abaixo.
      (A) a função é crescente para x positivo
      (B) a função é decrescente para x positivo
`
}

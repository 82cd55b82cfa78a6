package extract

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"stooda/internal/config"
	"stooda/internal/question"
	"stooda/internal/report"
)

// Extractor turns exam documents into question records using the
// tunables from the config.
type Extractor struct {
	cfg    config.Config
	logger *zap.Logger
	runID  func() (string, error)
	now    func() time.Time
}

// New builds an Extractor. A nil logger disables logging.
func New(cfg config.Config, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		cfg:    cfg,
		logger: logger,
		runID:  NewRunID,
		now:    time.Now,
	}
}

// Result is everything one extraction run produced.
type Result struct {
	RunID         string              `json:"run_id"`
	Exam          ExamInfo            `json:"exam"`
	StartedAt     time.Time           `json:"started_at"`
	FinishedAt    time.Time           `json:"finished_at"`
	Questions     []question.Question `json:"questions"`
	ImagesWritten int                 `json:"images_written"`
	Skipped       int                 `json:"skipped"`
	Summary       report.Summary      `json:"summary"`
}

// Extract runs the full pipeline on a document: write out figures,
// assemble marked-up text, split it into questions, and build the
// records. Figures land under outDir. Questions that fail the length
// filters are counted in Skipped, never fatal.
func (e *Extractor) Extract(doc Document, outDir string) (Result, error) {
	runID, err := e.runID()
	if err != nil {
		return Result{}, err
	}
	startedAt := e.now()

	examType, difficulty, err := e.resolveDefaults(doc)
	if err != nil {
		return Result{}, err
	}

	images, written, err := writeImages(doc, outDir, e.cfg.Images.Dir, e.logger)
	if err != nil {
		return Result{}, err
	}

	detector := NewSubjectDetector(e.cfg.Subjects)
	text := assembleText(doc, detector)
	raws := splitQuestions(text, e.cfg.Extraction.ContextWindow)
	e.logger.Info("questions found", zap.String("run_id", runID), zap.Int("count", len(raws)))

	questions := make([]question.Question, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		body := strings.TrimSpace(raw.body)
		if utf8.RuneCountInString(body) <= e.cfg.Extraction.MinQuestionLength {
			skipped++
			e.logger.Debug("question skipped",
				zap.Int("number", raw.number),
				zap.String("reason", "too short"))
			continue
		}

		q := question.Question{
			Number:       raw.number,
			Text:         extractStatement(body),
			Instruction:  extractInstruction(body),
			Alternatives: parseAlternatives(body),
			Subject:      detector.DetectIn(raw.context),
			ExamType:     examType,
			IssueDate:    doc.Exam.Date,
			Difficulty:   difficulty,
			Format:       classifyFormat(body),
			Formulas:     detectFormulas(body),
			Images:       associateImages(body, raw.page, images, e.cfg.Images.PageLookahead, e.cfg.Images.MaxPerQuestion),
		}
		q = q.Normalize()
		if q.Text == "" {
			skipped++
			e.logger.Debug("question skipped",
				zap.Int("number", raw.number),
				zap.String("reason", "empty statement"))
			continue
		}

		e.logger.Debug("question extracted",
			zap.Int("number", q.Number),
			zap.String("subject", string(q.Subject)))
		questions = append(questions, q)
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Number < questions[j].Number
	})

	summary := report.Build(questions)
	summary.ImagesWritten = written

	finishedAt := e.now()
	e.logger.Info("extraction finished",
		zap.String("run_id", runID),
		zap.Int("questions", len(questions)),
		zap.Int("images_written", written),
		zap.Int("skipped", skipped))

	return Result{
		RunID:         runID,
		Exam:          doc.Exam,
		StartedAt:     startedAt,
		FinishedAt:    finishedAt,
		Questions:     questions,
		ImagesWritten: written,
		Skipped:       skipped,
		Summary:       summary,
	}, nil
}

// resolveDefaults fills exam type and difficulty from the document,
// falling back to the config.
func (e *Extractor) resolveDefaults(doc Document) (question.ExamType, question.Difficulty, error) {
	examType := question.ExamType(doc.Exam.Type)
	if examType == "" {
		examType = question.ExamType(e.cfg.Defaults.ExamType)
	}
	difficulty, err := question.ParseDifficulty(doc.Exam.Difficulty)
	if err != nil {
		return "", 0, fmt.Errorf("document difficulty: %w", err)
	}
	if difficulty == question.DifficultyUnspecified {
		difficulty, err = question.ParseDifficulty(e.cfg.Defaults.Difficulty)
		if err != nil {
			return "", 0, fmt.Errorf("default difficulty: %w", err)
		}
	}
	return examType, difficulty, nil
}

// assembleText joins the page texts with page and subject markers so
// the context window before each question number carries where the
// question came from.
func assembleText(doc Document, detector *SubjectDetector) string {
	var builder strings.Builder
	for _, page := range doc.Pages {
		detector.Observe(page.Text)
		fmt.Fprintf(&builder, "\n[PAGINA:%d]\n", page.Number)
		if subject := detector.Current(); subject != "" {
			fmt.Fprintf(&builder, "[MATERIA:%s]\n", subject)
		}
		builder.WriteString(page.Text)
	}
	return builder.String()
}

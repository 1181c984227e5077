package service

import (
	"context"

	"go.uber.org/zap"

	"quiz-splice/internal/config"
	"quiz-splice/internal/domain"
	"quiz-splice/internal/dto"
	"quiz-splice/internal/emit"
	"quiz-splice/internal/extract"
	"quiz-splice/internal/parser"
	"quiz-splice/internal/splice"
	"quiz-splice/internal/util"
	"quiz-splice/internal/validation"
)

// QuestionInsertService moves questions from the source document onto the
// quiz page.
type QuestionInsertService interface {
	// InsertQuestions runs the full pipeline: extract the array, parse its
	// records, render them as page lines, and splice them into the page.
	InsertQuestions(ctx context.Context) (*dto.InsertionSummary, error)
	// PreviewQuestions runs the same pipeline but stops before touching
	// the page, returning the lines that would be inserted.
	PreviewQuestions(ctx context.Context) (*dto.InsertionPreview, error)
}

type insertService struct {
	source    domain.SourceRepository
	page      domain.PageRepository
	validator *validation.Validator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewQuestionInsertService creates a new instance of insertService.
func NewQuestionInsertService(
	source domain.SourceRepository,
	page domain.PageRepository,
	validator *validation.Validator,
	cfg *config.Config,
	logger *zap.Logger,
) QuestionInsertService {
	return &insertService{
		source:    source,
		page:      page,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *insertService) InsertQuestions(ctx context.Context) (*dto.InsertionSummary, error) {
	log := s.logger.With(zap.String("run_id", util.NewULID()))

	questions, skipped, err := s.parseSource(ctx, log)
	if err != nil {
		return nil, err
	}

	summary := &dto.InsertionSummary{
		Variable:   s.cfg.Source.Variable,
		PagePath:   s.page.Path(),
		Parsed:     len(questions),
		Skipped:    skipped,
		PriorTotal: s.cfg.Questions.AssumedPriorTotal,
		NewTotal:   s.cfg.Questions.AssumedPriorTotal + len(questions),
	}

	if len(questions) == 0 {
		log.Warn("No questions parsed; page left untouched",
			zap.String("variable", s.cfg.Source.Variable),
			zap.Int("skipped", skipped),
		)
		return summary, nil
	}

	s.warnQuestionIssues(log, questions)

	lines, err := s.page.Lines(ctx)
	if err != nil {
		log.Error("Failed to read page", zap.Error(err))
		return nil, err
	}

	index, err := s.insertIndex(lines)
	if err != nil {
		log.Error("Failed to locate insertion point",
			zap.String("marker", s.cfg.Page.Marker),
			zap.Error(err),
		)
		return nil, err
	}

	block := emit.Block(questions)
	updated, err := splice.InsertBefore(lines, index, block)
	if err != nil {
		return nil, err
	}

	if s.cfg.Page.Backup {
		backupPath, err := s.page.Backup(ctx)
		if err != nil {
			log.Error("Failed to back up page", zap.Error(err))
			return nil, err
		}
		summary.BackupPath = backupPath
		log.Info("Backed up page", zap.String("backup_path", backupPath))
	}

	if err := s.page.WriteLines(ctx, updated); err != nil {
		log.Error("Failed to write page", zap.Error(err))
		return nil, err
	}

	summary.Inserted = len(block)
	log.Info("Inserted questions into page",
		zap.Int("parsed", summary.Parsed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("inserted", summary.Inserted),
		zap.Int("insert_index", index),
		zap.String("page_path", summary.PagePath),
	)
	return summary, nil
}

func (s *insertService) PreviewQuestions(ctx context.Context) (*dto.InsertionPreview, error) {
	log := s.logger.With(zap.String("run_id", util.NewULID()))

	questions, skipped, err := s.parseSource(ctx, log)
	if err != nil {
		return nil, err
	}
	s.warnQuestionIssues(log, questions)

	return &dto.InsertionPreview{
		Variable: s.cfg.Source.Variable,
		Parsed:   len(questions),
		Skipped:  skipped,
		Lines:    emit.Block(questions),
	}, nil
}

// parseSource reads the source document and parses the configured array
// into questions. Record-level failures are logged by the parser and
// reported through the skipped count.
func (s *insertService) parseSource(ctx context.Context, log *zap.Logger) ([]domain.Question, int, error) {
	doc, err := s.source.Document(ctx)
	if err != nil {
		log.Error("Failed to read source document", zap.Error(err))
		return nil, 0, err
	}

	body, err := extract.ArrayBody(doc, s.cfg.Source.Variable)
	if err != nil {
		log.Error("Failed to locate question array",
			zap.String("variable", s.cfg.Source.Variable),
			zap.Error(err),
		)
		return nil, 0, err
	}

	questions, skipped := parser.Records(body, log)
	log.Info("Parsed question records",
		zap.String("variable", s.cfg.Source.Variable),
		zap.Int("parsed", len(questions)),
		zap.Int("skipped", skipped),
	)
	return questions, skipped, nil
}

// insertIndex resolves where the block goes: the marker line when one is
// configured, the fixed line index otherwise.
func (s *insertService) insertIndex(lines []string) (int, error) {
	if s.cfg.Page.Marker != "" {
		return splice.MarkerIndex(lines, s.cfg.Page.Marker)
	}
	if s.cfg.Page.InsertLine < 0 || s.cfg.Page.InsertLine > len(lines) {
		return 0, domain.NewInsertLineError(s.cfg.Page.InsertLine, len(lines))
	}
	return s.cfg.Page.InsertLine, nil
}

// warnQuestionIssues flags field problems and answer indices that point
// past the options list. The questions still go onto the page as written;
// the source is the authority on its own records.
func (s *insertService) warnQuestionIssues(log *zap.Logger, questions []domain.Question) {
	for i := range questions {
		if errs := s.validator.ValidateQuestion(&questions[i]); len(errs) > 0 {
			log.Warn("Question has empty required fields",
				zap.Int("record", i+1),
				zap.String("details", errs.Error()),
			)
		}
		if errs := s.validator.CheckAnswerBounds(&questions[i]); len(errs) > 0 {
			log.Warn("Answer index outside options range",
				zap.Int("record", i+1),
				zap.String("question", questions[i].Prompt),
				zap.String("details", errs.Error()),
			)
		}
	}
}

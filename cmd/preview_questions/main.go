package main

import (
	"context"
	"fmt"
	"os"

	"quiz-splice/internal/config"
	"quiz-splice/internal/logger"
	"quiz-splice/internal/repository"
	"quiz-splice/internal/service"
	"quiz-splice/internal/validation"

	"go.uber.org/zap"
)

// preview_questions renders the lines insert_questions would splice into
// the page and prints them without modifying anything.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sourceRepo := repository.NewSourceFileAdapter(cfg.Source.Path)
	pageRepo := repository.NewPageFileAdapter(cfg.Page.Path)
	insertSvc := service.NewQuestionInsertService(sourceRepo, pageRepo, validation.NewValidator(), cfg, logger.Get())

	ctx := context.Background()

	preview, err := insertSvc.PreviewQuestions(ctx)
	if err != nil {
		logger.Get().Fatal("Question preview failed", zap.Error(err))
	}

	fmt.Printf("Parsed %d questions from %s (%d skipped)\n", preview.Parsed, preview.Variable, preview.Skipped)
	for _, line := range preview.Lines {
		fmt.Println(line)
	}
}

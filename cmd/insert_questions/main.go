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

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so print this critical error directly
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Get().Info("Question insert starting up...",
		zap.String("source_path", cfg.Source.Path),
		zap.String("variable", cfg.Source.Variable),
		zap.String("page_path", cfg.Page.Path),
	)

	// Initialize repositories
	sourceRepo := repository.NewSourceFileAdapter(cfg.Source.Path)
	pageRepo := repository.NewPageFileAdapter(cfg.Page.Path)
	logger.Get().Info("Initialized repositories.")

	// Initialize InsertService
	insertSvc := service.NewQuestionInsertService(sourceRepo, pageRepo, validation.NewValidator(), cfg, logger.Get())

	ctx := context.Background()

	summary, err := insertSvc.InsertQuestions(ctx)
	if err != nil {
		logger.Get().Fatal("Question insert failed", zap.Error(err))
	}

	fmt.Printf("Parsed %d questions from %s\n", summary.Parsed, summary.Variable)
	fmt.Printf("Successfully added %d questions to %s\n", summary.Inserted, summary.PagePath)
	fmt.Printf("New total questions: %d\n", summary.NewTotal)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/lodestar/internal/cli"
	"github.com/alexanderramin/lodestar/internal/db"
	"github.com/alexanderramin/lodestar/internal/intelligence"
	"github.com/alexanderramin/lodestar/internal/llm"
	"github.com/alexanderramin/lodestar/internal/planner"
	"github.com/alexanderramin/lodestar/internal/repository"
	"github.com/alexanderramin/lodestar/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.lodestar/lodestar.db
	dbPath := os.Getenv("LODESTAR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lodestar", "lodestar.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	historyRepo := repository.NewSQLiteHistoryRepo(database)
	opportunityRepo := repository.NewSQLiteOpportunityRepo(database)

	var observers []service.UseCaseObserver
	if logUseCases, _ := strconv.ParseBool(os.Getenv("LODESTAR_LOG")); logUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// The rule-based explainer is the contract; the generative one wraps
	// it when an LLM is configured and falls back on any failure.
	var explainer planner.Explainer = planner.NewRuleExplainer()
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		explainer = intelligence.NewGenerativeExplainer(llm.NewOllamaClient(llmCfg, observer))
	}

	app := &cli.App{
		Planner:         service.NewPipelineService(historyRepo, opportunityRepo, explainer, observers...),
		Profiles:        service.NewProfileService(historyRepo, observers...),
		Opportunities:   service.NewOpportunityService(opportunityRepo),
		HistoryRepo:     historyRepo,
		OpportunityRepo: opportunityRepo,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

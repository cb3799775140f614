// Package main is the entry point for the ledger reconciler CLI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ledger-recon/engine/config"
	"github.com/ledger-recon/engine/internal/application/usecase/reconciliation"
	"github.com/ledger-recon/engine/internal/infra/dependency"
	"github.com/ledger-recon/engine/internal/integration/entrypoint/dto"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	bankFilesStr := flag.String("bank", "", "Comma-separated list of bank ledger files (required)")
	bookFilesStr := flag.String("book", "", "Comma-separated list of book ledger files (required)")
	format := flag.String("format", string(dependency.FormatCSV), "Ledger file format: csv or json")
	strategy := flag.String("strategy", string(reconciliation.StrategyBucketIndex), "Candidate lookup strategy: bucket or scan")
	suggestFor := flag.String("suggest", "", "Print ranked suggestions for the given unmatched bank record id instead of the report")
	flag.Parse()

	if *bankFilesStr == "" || *bookFilesStr == "" {
		fmt.Fprintln(os.Stderr, "Error: both -bank and -book are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	injector, err := dependency.NewInjector(cfg, dependency.Sources{
		Format:    dependency.LedgerFormat(*format),
		BankPaths: strings.Split(*bankFilesStr, ","),
		BookPaths: strings.Split(*bookFilesStr, ","),
	}, logger)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	output, err := injector.Reconciliation.Execute(ctx, reconciliation.RunReconciliationInput{
		Strategy: reconciliation.IndexStrategy(*strategy),
	})
	if err != nil {
		slog.Error("Reconciliation failed", "error", err)
		os.Exit(1)
	}

	var result any = dto.NewReconciliationReportDTO(output)
	if *suggestFor != "" {
		suggestions, err := suggestionsFor(injector.Suggestions, output, *suggestFor)
		if err != nil {
			slog.Error("Suggestion lookup failed", "error", err)
			os.Exit(1)
		}
		result = suggestions
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("Failed to encode output", "error", err)
		os.Exit(1)
	}

	fmt.Println(string(encoded))
}

// suggestionsFor ranks the unmatched book records against one unmatched bank
// record chosen by id.
func suggestionsFor(
	useCase *reconciliation.SuggestMatchesUseCase,
	output *reconciliation.RunReconciliationOutput,
	bankID string,
) ([]dto.SuggestionDTO, error) {
	for _, rec := range output.Report.UnmatchedBank {
		if rec.ID != bankID {
			continue
		}
		suggestions := useCase.Execute(reconciliation.SuggestMatchesInput{
			Target:     rec,
			Candidates: output.Report.UnmatchedBook,
		})
		return dto.NewSuggestionDTOs(suggestions), nil
	}
	return nil, fmt.Errorf("bank record %q is not unmatched", bankID)
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

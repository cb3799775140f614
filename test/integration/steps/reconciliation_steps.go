package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/ledger-recon/engine/internal/application/usecase/reconciliation"
	"github.com/ledger-recon/engine/internal/domain/entity"
)

func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a bank record "([^"]*)" of "([^"]*)" on "([^"]*)" described "([^"]*)"$`, aBankRecord)
	ctx.Step(`^a book record "([^"]*)" of "([^"]*)" on "([^"]*)" described "([^"]*)"$`, aBookRecord)
	ctx.Step(`^the acceptance threshold is "([^"]*)"$`, theAcceptanceThresholdIs)
}

func registerReconciliationSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I reconcile the ledgers$`, iReconcileTheLedgers)
	ctx.Step(`^I reconcile the ledgers with the "([^"]*)" strategy$`, iReconcileTheLedgersWithStrategy)
	ctx.Step(`^the report status is "([^"]*)"$`, theReportStatusIs)
	ctx.Step(`^bank record "([^"]*)" is matched to book record "([^"]*)" as "([^"]*)"$`, bankRecordIsMatchedTo)
	ctx.Step(`^bank record "([^"]*)" is unmatched$`, bankRecordIsUnmatched)
	ctx.Step(`^book record "([^"]*)" is unmatched$`, bookRecordIsUnmatched)
	ctx.Step(`^the report has (\d+) matches, (\d+) unmatched bank records and (\d+) unmatched book records$`, theReportHasCounts)
}

func registerSuggestionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I request suggestions for bank record "([^"]*)"$`, iRequestSuggestionsFor)
	ctx.Step(`^the top suggestion is book record "([^"]*)"$`, theTopSuggestionIs)
	ctx.Step(`^there are (\d+) suggestions$`, thereAreSuggestions)
}

func aBankRecord(ctx context.Context, id, amount, date, description string) error {
	tc := GetTestContext(ctx)
	tc.bankRecords = append(tc.bankRecords, entity.RawRecord{
		ID: id, Amount: amount, Date: date, Description: description,
	})
	return nil
}

func aBookRecord(ctx context.Context, id, amount, date, description string) error {
	tc := GetTestContext(ctx)
	tc.bookRecords = append(tc.bookRecords, entity.RawRecord{
		ID: id, Amount: amount, Date: date, Description: description,
	})
	return nil
}

func theAcceptanceThresholdIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	threshold, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid threshold %q: %w", value, err)
	}
	tc.cfg.AcceptanceThreshold = threshold
	return nil
}

func iReconcileTheLedgers(ctx context.Context) error {
	return runReconciliation(ctx, reconciliation.StrategyBucketIndex)
}

func iReconcileTheLedgersWithStrategy(ctx context.Context, strategy string) error {
	return runReconciliation(ctx, reconciliation.IndexStrategy(strategy))
}

func runReconciliation(ctx context.Context, strategy reconciliation.IndexStrategy) error {
	tc := GetTestContext(ctx)
	source := &memoryLedgerSource{bank: tc.bankRecords, book: tc.bookRecords}

	useCase, err := reconciliation.NewRunReconciliationUseCase(source, nil, tc.cfg)
	if err != nil {
		return err
	}

	tc.output, tc.runErr = useCase.Execute(ctx, reconciliation.RunReconciliationInput{Strategy: strategy})
	return tc.runErr
}

func theReportStatusIs(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc.output == nil {
		return fmt.Errorf("no reconciliation has run")
	}
	if got := string(tc.output.Report.Status); got != expected {
		return fmt.Errorf("expected status %s, got %s", expected, got)
	}
	return nil
}

func bankRecordIsMatchedTo(ctx context.Context, bankID, bookID, kind string) error {
	tc := GetTestContext(ctx)
	for _, m := range tc.output.Report.Matches {
		if m.Bank.ID != bankID {
			continue
		}
		if m.Book.ID != bookID {
			return fmt.Errorf("bank record %s matched to %s, expected %s", bankID, m.Book.ID, bookID)
		}
		if string(m.Kind) != kind {
			return fmt.Errorf("match %s/%s is %s, expected %s", bankID, bookID, m.Kind, kind)
		}
		return nil
	}
	return fmt.Errorf("bank record %s is not matched", bankID)
}

func bankRecordIsUnmatched(ctx context.Context, bankID string) error {
	tc := GetTestContext(ctx)
	for _, rec := range tc.output.Report.UnmatchedBank {
		if rec.ID == bankID {
			return nil
		}
	}
	return fmt.Errorf("bank record %s is not in the unmatched list", bankID)
}

func bookRecordIsUnmatched(ctx context.Context, bookID string) error {
	tc := GetTestContext(ctx)
	for _, rec := range tc.output.Report.UnmatchedBook {
		if rec.ID == bookID {
			return nil
		}
	}
	return fmt.Errorf("book record %s is not in the unmatched list", bookID)
}

func theReportHasCounts(ctx context.Context, matches, unmatchedBank, unmatchedBook int) error {
	tc := GetTestContext(ctx)
	report := tc.output.Report
	if len(report.Matches) != matches {
		return fmt.Errorf("expected %d matches, got %d", matches, len(report.Matches))
	}
	if len(report.UnmatchedBank) != unmatchedBank {
		return fmt.Errorf("expected %d unmatched bank records, got %d", unmatchedBank, len(report.UnmatchedBank))
	}
	if len(report.UnmatchedBook) != unmatchedBook {
		return fmt.Errorf("expected %d unmatched book records, got %d", unmatchedBook, len(report.UnmatchedBook))
	}
	return nil
}

func iRequestSuggestionsFor(ctx context.Context, bankID string) error {
	tc := GetTestContext(ctx)
	if tc.output == nil {
		return fmt.Errorf("no reconciliation has run")
	}

	var target *entity.TransactionRecord
	for i := range tc.output.Report.UnmatchedBank {
		if tc.output.Report.UnmatchedBank[i].ID == bankID {
			target = &tc.output.Report.UnmatchedBank[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("bank record %s is not unmatched", bankID)
	}

	useCase, err := reconciliation.NewSuggestMatchesUseCase(tc.cfg)
	if err != nil {
		return err
	}

	tc.suggestions = useCase.Execute(reconciliation.SuggestMatchesInput{
		Target:     *target,
		Candidates: tc.output.Report.UnmatchedBook,
	})
	return nil
}

func theTopSuggestionIs(ctx context.Context, bookID string) error {
	tc := GetTestContext(ctx)
	if len(tc.suggestions) == 0 {
		return fmt.Errorf("no suggestions were returned")
	}
	if got := tc.suggestions[0].Candidate.ID; got != bookID {
		return fmt.Errorf("expected top suggestion %s, got %s", bookID, got)
	}
	return nil
}

func thereAreSuggestions(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if len(tc.suggestions) != count {
		return fmt.Errorf("expected %d suggestions, got %d", count, len(tc.suggestions))
	}
	return nil
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"

	"github.com/cucumber/godog"

	"github.com/ledger-recon/engine/internal/application/usecase/reconciliation"
	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// Input feeds
	bankRecords []entity.RawRecord
	bookRecords []entity.RawRecord

	// Engine configuration, reset to defaults per scenario
	cfg valueobject.MatchConfig

	// Run results
	output *reconciliation.RunReconciliationOutput
	runErr error

	// Suggestion results
	suggestions []valueobject.Suggestion
}

// memoryLedgerSource serves the scenario's raw records directly, so the
// engine is exercised without touching the filesystem.
type memoryLedgerSource struct {
	bank []entity.RawRecord
	book []entity.RawRecord
}

func (s *memoryLedgerSource) GetBankRecords(context.Context) ([]entity.RawRecord, error) {
	return s.bank, nil
}

func (s *memoryLedgerSource) GetBookRecords(context.Context) ([]entity.RawRecord, error) {
	return s.book, nil
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {})
	ctx.AfterSuite(func() {})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{cfg: valueobject.DefaultMatchConfig()}
		return SetTestContext(ctx, tc), nil
	})

	registerLedgerSteps(ctx)
	registerReconciliationSteps(ctx)
	registerSuggestionSteps(ctx)
}

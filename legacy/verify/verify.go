package verify

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-legacy/legacy/assert"
	"github.com/LerianStudio/lib-legacy/legacy/errgroup"
	"github.com/LerianStudio/lib-legacy/legacy/log"
	"github.com/LerianStudio/lib-legacy/legacy/runtime"
)

const (
	component  = "verify"
	tracerName = "github.com/LerianStudio/lib-legacy/legacy/verify"

	// cancelCheckInterval is how many sweep iterations run between context checks.
	cancelCheckInterval = 64
)

// check is a single named property.
type check struct {
	name string
	run  func(ctx context.Context, asserter *assert.Asserter) error
}

// Run verifies both contracts and returns the collected results. A failing
// check does not make Run fail; only invalid options or a canceled ctx do.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	runID := newRunID()
	logger := log.OrNop(opts.Logger).With(
		log.String("component", component),
		log.String("run_id", runID.String()),
	)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "verify.Run",
		trace.WithAttributes(
			attribute.Int64("verify.seed", int64(opts.Seed)), //nolint:gosec
			attribute.Int("verify.samples", opts.Samples),
			attribute.String("verify.run_id", runID.String()),
		))
	defer span.End()

	suites := []struct {
		name   string
		checks []check
	}{
		{name: SuiteCopy, checks: copyChecks(opts)},
		{name: SuiteDivide, checks: divideChecks(opts)},
	}

	results := make([][]Result, len(suites))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLogger(logger)

	for i, suite := range suites {
		group.Go(suite.name, func() error {
			var err error

			results[i], err = runSuite(groupCtx, logger, suite.name, suite.checks)

			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	report := &Report{RunID: runID}
	for _, suiteResults := range results {
		report.Results = append(report.Results, suiteResults...)
	}

	logReport(ctx, logger, report)

	return report, nil
}

func runSuite(ctx context.Context, logger log.Logger, suite string, checks []check) ([]Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "verify.suite."+suite)
	defer span.End()

	asserter := assert.New(ctx, logger, component, suite)
	results := make([]Result, 0, len(checks))

	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := time.Now()

		err := runtime.Guard(ctx, logger, component, suite+"/"+c.name, func() error {
			return c.run(ctx, asserter.WithOperation(suite+"/"+c.name))
		})

		if ctxErr := ctx.Err(); ctxErr != nil {
			return results, ctxErr
		}

		results = append(results, Result{
			Suite:    suite,
			Check:    c.name,
			Passed:   err == nil,
			Err:      err,
			Duration: time.Since(start),
		})

		logger.Log(ctx, log.LevelDebug, "check finished",
			log.String("suite", suite),
			log.String("check", c.name),
			log.Bool("passed", err == nil),
		)
	}

	return results, nil
}

func logReport(ctx context.Context, logger log.Logger, report *Report) {
	failures := report.Failures()

	for _, failure := range failures {
		log.SafeError(ctx, logger.With(
			log.String("suite", failure.Suite),
			log.String("check", failure.Check),
		), "contract check failed", failure.Err, runtime.IsProductionMode())
	}

	level := log.LevelInfo
	if len(failures) > 0 {
		level = log.LevelWarn
	}

	logger.Log(ctx, level, "contract verification finished",
		log.Int("checks", len(report.Results)),
		log.Int("failed", len(failures)),
	)
}

// canceled reports ctx's error every cancelCheckInterval iterations.
func canceled(ctx context.Context, iteration int) error {
	if iteration%cancelCheckInterval != 0 {
		return nil
	}

	return ctx.Err()
}

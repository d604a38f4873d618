package conformance

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dataobject/eval"
	"dataobject/props"
	"dataobject/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Result     types.Value
	Error      error
}

// Runner executes conformance tests. Every test runs against a fresh bag
// seeded from the suite and test props.
type Runner struct {
	log *zap.Logger
}

// NewRunner creates a test runner. A nil logger discards output.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{log: logger.Named("conformance")}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		r.log.Debug("skip", zap.String("file", test.File), zap.String("test", test.Test.Name), zap.String("reason", reason))
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}

	bag, err := seedBag(test)
	if err != nil {
		return TestResult{Test: test, Error: fmt.Errorf("seed props: %w", err)}
	}

	val, runErr := eval.NewEvaluator(bag).Run(test.Test.Code)
	err = checkExpectation(test.Test.Expect, val, runErr, bag)

	res := TestResult{Test: test, Passed: err == nil, Result: val, Error: err}
	if err != nil {
		r.log.Debug("fail", zap.String("file", test.File), zap.String("test", test.Test.Name), zap.Error(err))
	}
	return res
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

func seedBag(test LoadedTest) (*props.Bag, error) {
	bag := props.New()
	var layers []map[string]any
	if test.Suite != nil {
		layers = append(layers, test.Suite.Props)
	}
	layers = append(layers, test.Test.Props)

	for _, layer := range layers {
		for k, raw := range layer {
			v, err := convertYAMLValue(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			if err := bag.Set(k, v); err != nil {
				return nil, err
			}
		}
	}
	return bag, nil
}

// checkExpectation checks every expectation that is set and reports all
// mismatches together
func checkExpectation(expect Expectation, val types.Value, runErr error, bag *props.Bag) error {
	if expect.Error != "" {
		want, _ := types.ErrorFromString(expect.Error)
		if runErr == nil {
			return fmt.Errorf("expected error %s, got value %#v", expect.Error, val)
		}
		if got := types.CodeOf(runErr); got != want {
			return fmt.Errorf("expected error %s, got %s: %v", want, got, runErr)
		}
		return nil
	}

	if runErr != nil {
		return fmt.Errorf("unexpected error: %w", runErr)
	}

	var err error
	if expect.HasValue() {
		want, convErr := expectedValue(expect)
		if convErr != nil {
			err = multierr.Append(err, fmt.Errorf("expected value: %w", convErr))
		} else if !types.Equal(val, want) {
			err = multierr.Append(err, fmt.Errorf("expected value %#v, got %#v", want, val))
		}
	}
	if expect.Type != "" && val.TypeName() != expect.Type {
		err = multierr.Append(err, fmt.Errorf("expected type %s, got %s", expect.Type, val.TypeName()))
	}
	if expect.String != "" && val.String() != expect.String {
		err = multierr.Append(err, fmt.Errorf("expected string %q, got %q", expect.String, val.String()))
	}
	for k, raw := range expect.Bag {
		want, convErr := convertYAMLValue(raw)
		if convErr != nil {
			err = multierr.Append(err, fmt.Errorf("bag %s: %w", k, convErr))
			continue
		}
		got, _ := bag.Lookup(k)
		if !types.Equal(got, want) {
			err = multierr.Append(err, fmt.Errorf("bag %s: expected %#v, got %#v", k, want, got))
		}
	}
	return err
}

func expectedValue(expect Expectation) (types.Value, error) {
	raw, err := expect.ExpectedValue()
	if err != nil {
		return types.Nothing, err
	}
	return convertYAMLValue(raw)
}

// convertYAMLValue converts a decoded YAML scalar to a Value. YAML null is
// the null string; collections have no Value form.
func convertYAMLValue(v any) (types.Value, error) {
	switch val := v.(type) {
	case nil:
		return types.NullString(), nil
	case int, int64, uint64, float64, bool, string:
		return types.FromAny(val), nil
	default:
		return types.Nothing, fmt.Errorf("unsupported YAML type: %T", v)
	}
}

// Package verify checks the BoundedStringCopy and SafeDivide contracts end to
// end.
//
// Run executes a copy suite and a divide suite concurrently. Each suite holds
// fixed scenarios plus a seeded sweep of generated inputs; every check runs
// under panic recovery, so a routine that traps shows up as a failed Result
// instead of crashing the caller. Quotients are compared against an
// arbitrary-precision reference computed with shopspring/decimal.
//
//	report, err := verify.Run(ctx, verify.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	if !report.Passed() {
//	    return fmt.Errorf("legacy contracts: %s", report.Summary())
//	}
package verify

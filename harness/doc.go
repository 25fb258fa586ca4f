// Package harness is a tiny assertion printer: every check writes one
// human-readable line
//
//	[PASS] name => got
//	[FAIL] name => got 3 expected 5
//
// to an io.Writer and is tallied for a final Summary. RunSuite drives the
// classify and biquad packages through the fixed exercise table.
//
// Failures are data, not errors: a FAIL line never aborts the run. Only a
// broken writer is reported through Reporter.Err.
package harness

// Package classify holds the small integer branch exercises: threshold
// classifiers (F1Original, F1Bug, F2, F3) and a three-way maximum.
//
// The functions reproduce their formulas verbatim, including the
// unreachable F2 branch and the tie defect of FindMax; they exist to be
// driven by branch-coverage test cases. Max3 is the corrected maximum.
package classify

// Package notation compresses sets of preflop combos into the range strings
// accepted by poker solvers, and parses those strings back.
//
// Compression runs in four pure steps:
//
//  1. Classify splits combos into pairs, suited and offsuit sets.
//  2. GroupPairs and GroupNonPairs find runs of adjacent ranks and render
//     them as "TT+", "99-66", "AJo+" or "KQs-K9s".
//  3. MergeSuitClasses folds matching suited and offsuit tokens into a
//     single suffix-less token ("AKs" + "AKo" = "AK").
//  4. A Format annotates each weight bucket for the target solver.
//
// CombosToRangeString runs the whole pipeline over weighted combos. None of
// the functions in this package share state, so they are safe to call from
// any number of goroutines.
package notation

// Package match provides name normalization and Levenshtein distance for
// "did you mean" suggestions when a key or name is not found.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names close to a missing one
package match

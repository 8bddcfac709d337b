// Package diagnostic provides coded errors and warnings collected while
// checking the column table, so every problem is reported at once instead
// of failing on the first one.
package diagnostic

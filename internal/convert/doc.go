// Package convert turns an equipment JSON document into a flat CSV file.
//
// A run is a single linear pass with no concurrency:
//
//	load -> parse -> map -> serialize -> write
//
// Each stage completes before the next one starts, and the first failure
// ends the run with a *StageError naming the stage. The output file is only
// touched by the last stage and is replaced atomically, so a failed run
// never leaves a partial or corrupted file behind.
package convert

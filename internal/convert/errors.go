package convert

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Stage -linecomment -output=stage_string.go

// Stage identifies a step of the conversion pipeline.
type Stage int

const (
	StageRead  Stage = iota // read
	StageParse              // parse
	StageMap                // map
	StageWrite              // write
)

// Description returns the user-facing prefix for errors of this stage.
func (s Stage) Description() string {
	switch s {
	case StageRead:
		return "Error reading input file"
	case StageParse:
		return "Error parsing JSON"
	case StageMap:
		return "Error mapping equipment data"
	case StageWrite:
		return "Error writing output file"
	default:
		return "Error"
	}
}

// StageError is a fatal failure of one pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage.Description(), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOf returns the stage of err, if err is or wraps a *StageError.
func StageOf(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}

	return 0, false
}

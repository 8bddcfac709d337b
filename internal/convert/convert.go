package convert

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"equipment-csv/internal/csvfmt"
	"equipment-csv/internal/document"
)

// Converter runs the conversion pipeline against a filesystem.
type Converter struct {
	fs     afero.Fs
	logger *zap.Logger
	mapper *Mapper
}

// Result summarizes a successful run.
type Result struct {
	RunID  string
	Output string
	Rows   int
}

// New creates a Converter for the built-in equipment table.
func New(fs afero.Fs, logger *zap.Logger) (*Converter, error) {
	mapper, err := DefaultMapper()
	if err != nil {
		return nil, err
	}

	return NewWithMapper(fs, logger, mapper), nil
}

// NewWithMapper creates a Converter with a custom mapper.
// Warnings of the mapper's column table are logged once here.
func NewWithMapper(fs afero.Fs, logger *zap.Logger, mapper *Mapper) *Converter {
	for _, w := range mapper.Warnings() {
		logger.Warn(w.String(), zap.String("code", w.Code), zap.Stringer("severity", w.Severity))
	}

	return &Converter{fs: fs, logger: logger, mapper: mapper}
}

// Run converts the JSON file at input into the CSV file at output.
// On success a confirmation naming output is logged at info level.
// Any failure is returned as a *StageError and leaves output untouched.
func (c *Converter) Run(input, output string) (*Result, error) {
	runID := uuid.NewString()
	logger := c.logger.With(zap.String("run_id", runID))
	logger.Debug("conversion started", zap.String("input", input), zap.String("output", output))

	data, err := Load(c.fs, input)
	if err != nil {
		return nil, fail(logger, StageRead, err)
	}

	logger.Debug("input loaded", zap.Int("bytes", len(data)))

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fail(logger, StageParse, err)
	}

	rows, err := c.mapper.Map(doc)
	if err != nil {
		return nil, fail(logger, StageMap, err)
	}

	logger.Debug("records mapped", zap.Int("records", len(rows)))

	out := csvfmt.Serialize(c.mapper.Header(), rows)

	if err := Write(c.fs, output, []byte(out)); err != nil {
		return nil, fail(logger, StageWrite, err)
	}

	logger.Debug("output written", zap.Int("bytes", len(out)))
	logger.Info(fmt.Sprintf("CSV file has been saved to %s", output))

	return &Result{RunID: runID, Output: output, Rows: len(rows)}, nil
}

func fail(logger *zap.Logger, stage Stage, err error) error {
	logger.Debug("conversion failed", zap.Stringer("stage", stage), zap.Error(err))
	return &StageError{Stage: stage, Err: err}
}

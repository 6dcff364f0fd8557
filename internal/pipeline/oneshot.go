package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"switchports/internal"
	"switchports/internal/table"
)

// Generate loads the export at path and builds the report rows. Every failure
// comes back as a *ReportError.
func Generate(path string, logger *zap.Logger) (rows []internal.ReportRow, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, &ReportError{Kind: KindNotFound, Path: path, Err: statErr}
	}
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = &ReportError{Kind: KindInternal, Path: path, Err: fmt.Errorf("%v", r)}
		}
	}()

	logger.Debug("loading export", zap.String("path", path), zap.String("format", string(table.DetectFormat(path))))
	t, err := table.Load(path)
	if err != nil {
		return nil, &ReportError{Kind: KindLoad, Path: path, Err: err}
	}
	logger.Debug("export loaded", zap.Int("rows", t.Len()), zap.Strings("columns", t.Columns()))

	if err := t.Require(internal.RequiredColumns...); err != nil {
		return nil, &ReportError{Kind: KindMissingColumn, Path: path, Err: err}
	}

	names := BuildNameMap(t, logger)
	devices, err := SelectConnected(t)
	if err != nil {
		kind := KindCoercion
		var missing *table.MissingColumnError
		if errors.As(err, &missing) {
			kind = KindMissingColumn
		}
		return nil, &ReportError{Kind: kind, Path: path, Err: err}
	}

	ports, _ := t.Column(internal.ColumnSwitchPort)
	rows = Resolve(devices, ports.Kind, names)
	logger.Debug("report built",
		zap.Int("connected", len(rows)),
		zap.Int("names", names.Len()),
		zap.Int("duplicateIds", names.Duplicates()),
		zap.String("portKind", string(ports.Kind)))
	return rows, nil
}

// Run writes the report for path to w. On failure the user message is written
// instead and the *ReportError is returned.
func Run(w io.Writer, path string, logger *zap.Logger) error {
	rows, err := Generate(path, logger)
	if err != nil {
		var rerr *ReportError
		if !errors.As(err, &rerr) {
			rerr = &ReportError{Kind: KindInternal, Path: path, Err: err}
		}
		logger.Debug("report failed", zap.String("kind", string(rerr.Kind)), zap.Error(rerr))
		if _, werr := fmt.Fprintln(w, rerr.UserMessage()); werr != nil {
			return werr
		}
		return rerr
	}
	return Render(w, rows)
}

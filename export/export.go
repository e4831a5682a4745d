// Package export persists the assembled train/verify tables as tabular
// files. The recognized formats form a closed set; an unrecognized selector
// is an error, not a silent no-op.
package export

import (
	"errors"
	"fmt"
)

// Format selects how (and whether) the tables are written.
type Format string

const (
	// FormatCSV writes two CSV files, train_<base> and test_<base>.
	FormatCSV Format = "csv"
	// FormatExcel writes one workbook with "Training Data" and
	// "Testing Data" sheets.
	FormatExcel Format = "excel"
	// FormatNone performs no I/O.
	FormatNone Format = "none"
)

// ErrUnknownFormat indicates a format selector outside the recognized set.
var ErrUnknownFormat = errors.New("export: unknown format")

// Write persists the two tables under the selected format. basePath is the
// base filename the per-format naming convention derives from. The caller
// keeps the in-memory matrices either way; Write only performs I/O.
func Write(train, verify Table, format Format, basePath string) error {
	switch format {
	case FormatCSV:
		return writeCSV(train, verify, basePath)
	case FormatExcel:
		return writeExcel(train, verify, basePath)
	case FormatNone:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

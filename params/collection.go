package params

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// A Collection is one parameter-extraction result: a set of named parameters
// measured over a set of media items. The media ordering is the collection's
// own and is independent of the canonical dataset ordering; alignment happens
// later, at assembly time.
type Collection struct {
	// Name labels the collection in logs and errors. Load uses the file
	// basename.
	Name string

	// ParNames holds the parameter names, one per row of Data.
	ParNames []string

	// MediaNames holds the media names, one per column of Data, in the
	// collection's local order.
	MediaNames []string

	// Data is indexed [parameter][media-position-in-this-collection].
	Data [][]float64
}

// NewCollection builds a Collection after validating its shape: one data row
// per parameter name, and every row as wide as the media name list.
func NewCollection(name string, parNames, mediaNames []string, data [][]float64) (*Collection, error) {
	if len(data) != len(parNames) {
		return nil, fmt.Errorf("%w: collection %q has %d parameter names but %d data rows",
			ErrShapeMismatch, name, len(parNames), len(data))
	}
	for i, row := range data {
		if len(row) != len(mediaNames) {
			return nil, fmt.Errorf("%w: collection %q row %d (%s) has %d values for %d media",
				ErrShapeMismatch, name, i, parNames[i], len(row), len(mediaNames))
		}
	}
	return &Collection{
		Name:       name,
		ParNames:   parNames,
		MediaNames: mediaNames,
		Data:       data,
	}, nil
}

// Load reads a parameter-result CSV from path. The collection name is the
// file basename without extension.
func Load(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter result %s: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	c, err := Read(name, f)
	if err != nil {
		return nil, fmt.Errorf("parameter result %s: %w", path, err)
	}
	return c, nil
}

// Read parses a parameter-result CSV. The header row is
// "parameter,<media name>,<media name>,..."; every following row is a
// parameter name and one value per media column.
func Read(name string, r io.Reader) (*Collection, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header needs a parameter column and at least one media column, got %d columns", len(header))
	}

	mediaNames := make([]string, len(header)-1)
	for i, h := range header[1:] {
		mediaNames[i] = strings.TrimSpace(h)
	}

	var parNames []string
	var data [][]float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d has %d columns, header has %d", row, len(record), len(header))
		}

		values := make([]float64, len(mediaNames))
		for i, cell := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value for %q/%q: %w",
					strings.TrimSpace(record[0]), mediaNames[i], err)
			}
			values[i] = v
		}
		parNames = append(parNames, strings.TrimSpace(record[0]))
		data = append(data, values)
		row++
	}

	return NewCollection(name, parNames, mediaNames, data)
}

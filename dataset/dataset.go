package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// This package holds the rated-media side of a training run: the dataset of
// media items with their subjective scores, and the canonical index that
// every assembled feature column is aligned against.
//
// A dataset CSV is expected to have the columns "name", "file", "mos" and
// "category" (matched case-insensitively, extra columns are ignored). The
// category value "train" marks a row as training material; any other value
// puts the row in the verification split.

// CategoryTrain is the category value that places a media item in the
// training split.
const CategoryTrain = "train"

// Media is a single rated media item.
type Media struct {
	// Name uniquely identifies the item within its dataset and is the key
	// parameter collections use to reference it.
	Name string

	// File is the path or reference to the underlying media file.
	File string

	// MOS is the mean opinion score assigned by human raters.
	MOS float64

	// Category is the split label. See CategoryTrain.
	Category string
}

// Dataset is an ordered collection of rated media items. Order matters: it
// determines the canonical position assigned to each item by BuildIndex.
type Dataset []Media

// Load reads a dataset CSV from path.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()
	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Read parses a dataset CSV from r. The first record is the header; column
// positions are discovered from it so column order in the file is free.
func Read(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(strings.ToLower(col))] = i
	}

	required := []string{"name", "file", "mos", "category"}
	for _, col := range required {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("required column %q not found in dataset CSV", col)
		}
	}

	var ds Dataset
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		mos, err := parseFloat64(record[colIndex["mos"]])
		if err != nil {
			return nil, fmt.Errorf("failed to parse mos at row %d: %w", row, err)
		}

		ds = append(ds, Media{
			Name:     strings.TrimSpace(record[colIndex["name"]]),
			File:     strings.TrimSpace(record[colIndex["file"]]),
			MOS:      mos,
			Category: strings.TrimSpace(record[colIndex["category"]]),
		})
		row++
	}

	return ds, nil
}

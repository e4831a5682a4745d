package export

import (
	"strings"

	"github.com/jnawrocki/trainmat/assemble"
)

// Table is one output table: a header and rows of cells. Cells are either
// string (media metadata) or float64 (mos and parameter values) so the Excel
// writer can keep numbers numeric while the CSV writer formats them.
type Table struct {
	Header []string
	Rows   [][]any
}

// metaColumns are the fixed leading columns of every exported table, ahead
// of the parameter columns.
var metaColumns = []string{"MediaName", "MediaFile", "mos"}

// SanitizeHeader makes a parameter name safe for use as a tabular column
// header: runs of characters outside [A-Za-z0-9_.-] collapse to a single
// underscore, and leading/trailing underscores are trimmed. An empty result
// comes back as "_".
func SanitizeHeader(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		ok := r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' ||
			r == '_' || r == '.' || r == '-'
		if ok {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "_"
	}
	return s
}

// BuildTables turns a split into its two output tables. Column layout is
// [MediaName, MediaFile, mos, <sanitized parameter names...>] and is
// identical between the two tables.
func BuildTables(s *assemble.Split) (train, verify Table) {
	header := make([]string, 0, len(metaColumns)+len(s.ParNames))
	header = append(header, metaColumns...)
	for _, p := range s.ParNames {
		header = append(header, SanitizeHeader(p))
	}

	train = buildTable(header, s.NamesTrain, s.FilesTrain, s.YTrain, s.XTrain)
	verify = buildTable(header, s.NamesVerify, s.FilesVerify, s.YVerify, s.XVerify)
	return train, verify
}

func buildTable(header, names, files []string, y []float64, x *assemble.Matrix) Table {
	t := Table{
		Header: header,
		Rows:   make([][]any, x.Rows),
	}
	for i := 0; i < x.Rows; i++ {
		row := make([]any, 0, len(header))
		row = append(row, names[i], files[i], y[i])
		for _, v := range x.Row(i) {
			row = append(row, v)
		}
		t.Rows[i] = row
	}
	return t
}

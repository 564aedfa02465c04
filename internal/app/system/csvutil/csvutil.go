// internal/app/system/csvutil/csvutil.go

// Package csvutil flattens document-store records into CSV header/row
// form. The header is the union of keys across the whole collection in
// first-seen order, so heterogeneous stragglers still land in a column
// instead of being dropped.
package csvutil

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoRecords is returned when a collection has nothing to export; with
// zero records no header is inferable, so the caller must surface this
// as a distinct case rather than writing an empty file.
var ErrNoRecords = errors.New("no records to export")

// Flatten converts a collection snapshot into a header row plus one row
// of stringified values per document. Documents must be decoded as
// bson.D so field order is preserved; bson.M would randomize the header.
func Flatten(docs []bson.D) (header []string, rows [][]string, err error) {
	if len(docs) == 0 {
		return nil, nil, ErrNoRecords
	}

	seen := make(map[string]int)
	for _, doc := range docs {
		for _, e := range doc {
			if _, ok := seen[e.Key]; !ok {
				seen[e.Key] = len(header)
				header = append(header, e.Key)
			}
		}
	}

	rows = make([][]string, 0, len(docs))
	for _, doc := range docs {
		row := make([]string, len(header))
		for _, e := range doc {
			row[seen[e.Key]] = Stringify(e.Value)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// Stringify renders one BSON value as a CSV cell.
func Stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Sanitize prevents spreadsheet formula injection in exported cells.
func Sanitize(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

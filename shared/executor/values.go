package executor

import (
	"strconv"
	"strings"
	"time"
)

// TimeLayout renders DATETIME and TIMESTAMP values in UTC with milliseconds.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// normalizeValue makes scanned values JSON friendly. The MySQL text protocol
// hands every column back as []byte; integer and floating point columns are
// decoded back to numbers, DECIMAL and everything else become strings.
// Parsed times become UTC strings in TimeLayout.
func normalizeValue(typeName string, v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(TimeLayout)
	}

	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)

	name := strings.ToUpper(typeName)
	unsigned := strings.HasPrefix(name, "UNSIGNED ")
	name = strings.TrimPrefix(name, "UNSIGNED ")

	switch name {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT", "YEAR":
		if unsigned {
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return u
			}
		} else if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	case "FLOAT", "DOUBLE", "REAL":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

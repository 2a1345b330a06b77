package database

import (
	"fmt"
	"time"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// Timestamp scans created_at from either driver. lib/pq yields time.Time,
// modernc sqlite yields time.Time or the raw TEXT depending on the column decltype.
type Timestamp struct {
	Time *time.Time
}

func (t Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case int64:
		*t.Time = time.Unix(v, 0).UTC()
		return nil
	case nil:
		*t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", s)
}

package templates

import "time"

// utc so that identical input renders identically everywhere.
func toDateStr(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}

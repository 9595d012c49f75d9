package model

import "time"

// JavaScriptのtoISOStringと同じ形（UTC, ミリ秒）
const TimestampLayout = "2006-01-02T15:04:05.000Z"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

package utils

import (
	"database/sql"
	"time"

	"github.com/aarondl/null/v8"
)

func NullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

func NullBoolToPtr(nb sql.NullBool) *bool {
	if nb.Valid {
		return &nb.Bool
	}
	return nil
}

func NullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

func NullToNullString(s null.String) sql.NullString {
	return sql.NullString{String: s.String, Valid: s.Valid}
}

func NullToNullBool(b null.Bool) sql.NullBool {
	return sql.NullBool{Bool: b.Bool, Valid: b.Valid}
}

func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

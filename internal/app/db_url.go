package app

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/ipl-dashboard/internal/config"
)

// normalizeDBURL sets lib/pq binary_parameters for Postgres so queries skip the unnamed
// prepare round trip.
func normalizeDBURL(driver, raw string, disablePreparedBinaryResult bool) string {
	if driver != config.DBDriverPostgres || !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("binary_parameters") == "" {
		query.Set("binary_parameters", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(driver, raw string) string {
	if driver == config.DBDriverSQLite {
		path := sqlitePathFromDSN(raw)
		if path == "" {
			return "memory"
		}
		return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

// sqlitePathFromDSN returns the file behind a SQLite DSN, or "" for in-memory databases.
func sqlitePathFromDSN(raw string) string {
	dsn := strings.TrimSpace(raw)
	dsn = strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		dsn = dsn[:i]
	}
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, ":memory:") {
		return ""
	}
	return dsn
}

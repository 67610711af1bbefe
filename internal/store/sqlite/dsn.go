package sqlite

import (
	"fmt"
	"net/url"
	"strings"
)

// parseDSN turns sqlite://<path> into a read-only modernc URI. :memory:
// stays writable so tests can seed it.
func parseDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, "sqlite://") {
		return "", fmt.Errorf("invalid sqlite DSN scheme, expected sqlite://")
	}

	rest := strings.TrimPrefix(dsn, "sqlite://")
	if rest == "" {
		return "", fmt.Errorf("sqlite DSN has no path")
	}
	if rest == ":memory:" {
		return ":memory:", nil
	}

	path, rawQuery, _ := strings.Cut(rest, "?")
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", fmt.Errorf("parsing DSN query: %w", err)
	}
	if query.Get("mode") == "" {
		query.Set("mode", "ro")
	}
	query.Add("_pragma", "busy_timeout(30000)")

	return "file:" + unescaped + "?" + query.Encode(), nil
}

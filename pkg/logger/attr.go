package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Browser records a browser name under the key "browser".
// If name is empty, it returns an empty Attr.
func Browser(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("browser", name)
}

// CachePath records the cache file location under the key "cache_path".
// If path is empty, it returns an empty Attr.
func CachePath(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("cache_path", path)
}

package diagfmt

import (
	"os"
	"path/filepath"
	"strings"
)

// autoPathLimit is the length above which PathModeAuto shortens absolute paths.
const autoPathLimit = 40

func formatPath(path string, mode PathMode, baseDir string) string {
	// виртуальные файлы (<stdin>, <builtin>) выводим как есть
	if strings.HasPrefix(path, "<") {
		return path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	case PathModeRelative:
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		if rel, err := filepath.Rel(baseDir, abs); err == nil {
			return filepath.ToSlash(rel)
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		if len(path) < autoPathLimit || !filepath.IsAbs(path) {
			return path
		}
		return filepath.Base(path)
	}
}

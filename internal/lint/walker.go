package lint

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/rs/zerolog"
)

// Walker enumerates the source files to scan
type Walker struct {
	Roots      []string
	Extensions []string
	SkipDirs   []string
	logger     zerolog.Logger
}

// NewWalker creates a walker; roots may be directories or single files
func NewWalker(roots, extensions, skipDirs []string, logger zerolog.Logger) *Walker {
	return &Walker{
		Roots:      roots,
		Extensions: extensions,
		SkipDirs:   skipDirs,
		logger:     logger.With().Str("component", "Walker").Logger(),
	}
}

// Files returns every matching file under the roots, sorted and without duplicates.
// Hidden and build-artifact directories are not descended into; missing roots are skipped.
func (w *Walker) Files() ([]string, error) {
	exts := make(map[string]bool, len(w.Extensions))
	for _, ext := range w.Extensions {
		exts[strings.ToLower(ext)] = true
	}
	skip := make(map[string]bool, len(w.SkipDirs))
	for _, dir := range w.SkipDirs {
		skip[dir] = true
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if exts[strings.ToLower(filepath.Ext(path))] && !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range w.Roots {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				w.logger.Warn().Str("root", root).Msg("Scan root does not exist, skipping")
				continue
			}
			return nil, common.WrapErrorf(err, "failed to stat scan root '%s'", root)
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				w.logger.Warn().Err(err).Str("path", path).Msg("Unreadable path, skipping")
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != root && (strings.HasPrefix(d.Name(), ".") || skip[d.Name()]) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, common.WrapErrorf(err, "failed to walk scan root '%s'", root)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Each reads every file and hands its content to fn
func (w *Walker) Each(fn func(path, content string)) (int, error) {
	files, err := w.Files()
	if err != nil {
		return 0, err
	}
	fm := common.NewFileManager(w.logger)
	scanned := 0
	for _, path := range files {
		data, err := fm.ReadFile(path, common.DefaultMaxReadSize)
		if err != nil {
			w.logger.Warn().Err(err).Str("path", path).Msg("Failed to read file, skipping")
			continue
		}
		fn(path, string(data))
		scanned++
	}
	return scanned, nil
}

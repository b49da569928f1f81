package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/aoc/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// basePrefix returns the name used for the configuration and cache
// directories: the base name of the executable, with these substitutions:
//   - "__debug_bin<N>" (dlv default output): replaced with [pkg.Name]
//   - "^\.+" (dot-prefixed names): dot prefix removed
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): pkg.Name,
			regexp.MustCompile(`^\.+`):             "",
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		if id == "" {
			id = pkg.Name
		}

		return id
	},
)

// userDir returns the directory from primary, falling back to fallback
// under the home directory, then to the working directory.
func userDir(primary func() (string, error), fallback string) string {
	dir, err := primary()
	if err == nil {
		return filepath.Join(dir, basePrefix())
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, fallback, basePrefix())
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, basePrefix())
	}

	return basePrefix()
}

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir returns the cache directory path used for transient files.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins elem to the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}

package sfoglia

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/calzoneworks/sfoglia/pkg/sfoglia/internal"
)

// Options configures library-wide behavior.
type Options struct {
	// LogPath is the full path for the log file including filename.
	// Parent directories are created as needed. Empty means stdout only.
	LogPath string `toml:"log_path"`

	// LogLevel is one of debug, info, warn or error. Defaults to info.
	LogLevel string `toml:"log_level"`
}

// Init applies library-wide options. Calling it is optional; without it
// pagers log at info level to stdout. Call before constructing pagers
// for LogPath to take effect.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
}

// LoadOptions reads Options from a TOML file.
func LoadOptions(path string) (Options, error) {
	var options Options
	if _, err := toml.DecodeFile(path, &options); err != nil {
		return Options{}, fmt.Errorf("sfoglia: load options %s: %w", path, err)
	}
	return options, nil
}

// Shutdown flushes and closes the log file, if one was opened.
func Shutdown() {
	internal.CloseLogger()
}

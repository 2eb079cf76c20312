package module

import "wordwarden/internal/platform/config"

// Options holds configuration settings for the check module
type Options struct {
	ConfigPath     string
	Workers        int
	DictDir        string
	SymbolsDir     string
	SymbolsExts    []string
	SymbolsMaxFile int64
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("CORE_CHECK_")
	return Options{
		ConfigPath:     df.MayString("CONFIG_PATH", ".wordwarden.toml"),
		Workers:        df.MayInt("WORKERS", 4),
		DictDir:        df.MayString("DICT_DIR", ""),
		SymbolsDir:     df.MayString("SYMBOLS_DIR", ""),
		SymbolsExts:    df.MayCSV("SYMBOLS_EXTS", nil),
		SymbolsMaxFile: df.MayInt64("SYMBOLS_MAX_FILE", 0),
	}
}

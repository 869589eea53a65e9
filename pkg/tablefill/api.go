package tablefill

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Engine fills template tables. Use New() to create an engine with the global
// configuration, or NewWithConfig for an explicit one.
type Engine struct {
	config *Config
	logger *Logger
}

// New creates an engine with the global configuration and logger.
func New() *Engine {
	return &Engine{
		config: GetGlobalConfig(),
	}
}

// NewWithConfig creates an engine with its own configuration and a logger built
// from it.
func NewWithConfig(config *Config) *Engine {
	config = withDefaults(config)
	return &Engine{
		config: config,
		logger: NewLoggerFromConfig(os.Stderr, config),
	}
}

// WithLogger returns a copy of the engine that logs to logger.
func (e *Engine) WithLogger(logger *Logger) *Engine {
	clone := *e
	clone.logger = logger
	return &clone
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

func (e *Engine) log() *Logger {
	if e.logger != nil {
		return e.logger
	}
	return GetLogger()
}

func withDefaults(config *Config) *Config {
	defaults := DefaultConfig()
	if config == nil {
		return defaults
	}
	c := *config
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaults.LogFormat
	}
	if c.MainPart == "" {
		c.MainPart = defaults.MainPart
	}
	return &c
}

// InsertTableRows opens template, expands the table row marked by marker into one
// row per entry of rows, and saves the result to output. Nothing is written when
// the marker cannot be found.
func InsertTableRows(template, marker string, rows [][]string, output string) error {
	return New().InsertTableRows(template, marker, rows, output)
}

// InsertTableRows is the engine form of the package-level InsertTableRows.
func (e *Engine) InsertTableRows(template, marker string, rows [][]string, output string) error {
	dr, err := OpenDocx(template)
	if err != nil {
		return err
	}

	root, err := dr.RootElement(e.config.MainPart)
	if err != nil {
		return NewDocumentError("resolve main part", template, err)
	}

	if err := e.InsertRows(root, marker, rows); err != nil {
		return err
	}

	if err := dr.Save(output); err != nil {
		return err
	}

	e.log().WithFields(Fields{
		"template": template,
		"output":   output,
		"rows":     len(rows),
	}).Info("table rows inserted")
	return nil
}

// BatchResult is the outcome of filling one template in FillGlob.
type BatchResult struct {
	Template string
	Output   string
	Err      error
}

// FillGlob fills every template matching pattern (doublestar syntax, "**" allowed)
// and writes each result under outDir, keeping its path relative to the static
// prefix of the pattern. Failures are collected; every template is attempted.
func FillGlob(pattern, marker string, rows [][]string, outDir string) ([]BatchResult, error) {
	return New().FillGlob(pattern, marker, rows, outDir)
}

// FillGlob is the engine form of the package-level FillGlob.
func (e *Engine) FillGlob(pattern, marker string, rows [][]string, outDir string) ([]BatchResult, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no templates match %q", pattern)
	}
	sort.Strings(matches)

	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)

	errs := NewMultiError()
	results := make([]BatchResult, 0, len(matches))
	for _, match := range matches {
		rel, err := filepath.Rel(base, match)
		if err != nil {
			rel = filepath.Base(match)
		}
		output := filepath.Join(outDir, rel)

		result := BatchResult{Template: match, Output: output}
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			result.Err = err
		} else {
			result.Err = e.InsertTableRows(match, marker, rows, output)
		}
		if result.Err != nil {
			e.log().WithField("template", match).Error("fill failed: %v", result.Err)
			errs.Add(WithContext(result.Err, "fill", map[string]interface{}{"template": match}))
		}
		results = append(results, result)
	}

	return results, errs.Err()
}

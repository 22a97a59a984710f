/*
DESCRIPTION
  config.go provides the configuration and default thresholds used by
  signature extraction and matching, in the manner of revid/config.Config.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package signature

import "github.com/ausocean/utils/logging"

// MatchMode selects the matching strategy used when comparing two streams.
// This is the one polymorphic surface in the core (the matcher's mode); it is
// modelled as a plain variant, never a function pointer.
type MatchMode int

const (
	// ModeOff disables signature lookup entirely.
	ModeOff MatchMode = iota

	// ModeFull performs the complete coarse -> Hough -> sequence evaluation
	// pipeline and keeps searching for the best-scoring candidate.
	ModeFull

	// ModeFast behaves like ModeFull except that every accepted candidate
	// replaces the running best regardless of its mean distance, so the last
	// accepted candidate is kept. The search still visits every candidate
	// unless a whole-video match ends it early.
	ModeFast
)

// String implements fmt.Stringer for MatchMode.
func (m MatchMode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeFull:
		return "full"
	case ModeFast:
		return "fast"
	default:
		return "unknown"
	}
}

// OutputFormat selects the serialization container used for export.
type OutputFormat int

const (
	FormatBinary OutputFormat = iota
	FormatXML
)

// Default threshold values, as used by the live extractor path. The
// buffer-compare convenience path (match.CompareBuffers) uses a looser
// ThXH (match.CompareThXH); that divergence is preserved rather than
// unified, per spec's open question on the subject.
const (
	DefaultThD  = 9000   // Per-word Jaccard distance threshold.
	DefaultThDC = 60000  // Composite Jaccard distance threshold.
	DefaultThXH = 116    // Per-frame L1 threshold, live extractor path.
	DefaultThDI = 0      // Minimum matching length.
	DefaultThIT = 0.5    // Minimum good-frame ratio.
)

// Config holds the thresholds and options used to extract and match
// signatures. A zero Config is not valid; call Validate (or use
// NewConfig) before use, which fills in unset thresholds with the
// defaults above, logging when it does so, and defaults NumStreams to 1.
type Config struct {
	// Logger receives diagnostic messages. If nil, Validate installs a
	// discarding logger.
	Logger logging.Logger

	// Mode selects the matching strategy; see MatchMode.
	Mode MatchMode

	// NumStreams is the number of input streams to be processed.
	NumStreams int

	// OutputTemplate is the output filename template. When NumStreams > 1
	// it must contain a numeric verb (e.g. "%d") to disambiguate outputs.
	OutputTemplate string

	// OutputFormat selects between binary and XML export.
	OutputFormat OutputFormat

	// ThD is the per-word Jaccard distance threshold (th_d).
	ThD int

	// ThDC is the composite Jaccard distance threshold (th_dc).
	ThDC int

	// ThXH is the per-frame L1 distance threshold (th_xh).
	ThXH int

	// ThDI is the minimum matching length (th_di).
	ThDI int

	// ThIT is the minimum good-frame ratio (th_it).
	ThIT float64
}

// NewConfig returns a Config with every field defaulted, matching the live
// extractor's thresholds.
func NewConfig(log logging.Logger) Config {
	c := Config{Logger: log}
	c.Validate()
	return c
}

// Validate fills in unset (zero-valued) threshold fields with defaults,
// logging each time it does so, in the style of revid/config.Config.Validate,
// and sets an unset NumStreams to 1 without logging. It returns
// an error if the combination of options is invalid, e.g. multiple input
// streams without a numeric output template.
func (c *Config) Validate() error {
	if c.Logger == nil {
		c.Logger = &discardLogger{}
	}
	if c.ThD <= 0 {
		c.logInvalidField("ThD", DefaultThD)
		c.ThD = DefaultThD
	}
	if c.ThDC <= 0 {
		c.logInvalidField("ThDC", DefaultThDC)
		c.ThDC = DefaultThDC
	}
	if c.ThXH <= 0 {
		c.logInvalidField("ThXH", DefaultThXH)
		c.ThXH = DefaultThXH
	}
	if c.ThIT <= 0 {
		c.logInvalidField("ThIT", DefaultThIT)
		c.ThIT = DefaultThIT
	}
	if c.NumStreams <= 0 {
		c.NumStreams = 1
	}
	if c.NumStreams > 1 && !hasNumericVerb(c.OutputTemplate) {
		return errInvalidConfig
	}
	return nil
}

func (c *Config) logInvalidField(name string, def interface{}) {
	c.Logger.Warning(name+" bad or unset, defaulting", name, def)
}

// hasNumericVerb reports whether s contains a printf-style numeric verb
// usable to disambiguate per-stream output filenames.
func hasNumericVerb(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '%' {
			continue
		}
		for j := i + 1; j < len(s); j++ {
			switch s[j] {
			case 'd', 'x', 'X', 'o', 'b':
				return true
			case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
				continue
			default:
				j = len(s) // stop scanning this verb
			}
		}
	}
	return false
}

// discardLogger is a logging.Logger that discards everything. Used as the
// fallback when no Logger is supplied to Validate.
type discardLogger struct{}

func (*discardLogger) Log(int8, string, ...interface{})    {}
func (*discardLogger) SetLevel(int8)                       {}
func (*discardLogger) Debug(string, ...interface{})        {}
func (*discardLogger) Info(string, ...interface{})         {}
func (*discardLogger) Warning(string, ...interface{})      {}
func (*discardLogger) Error(string, ...interface{})        {}
func (*discardLogger) Fatal(string, ...interface{})         {}

package report

import (
	"log/slog"
	"sync"
)

// Severity grades a Diagnostic.
type Severity int

const (
	// Info marks advisory findings.
	Info Severity = iota
	// Warning marks suspicious but usable geometry.
	Warning
	// Error marks degenerate geometry that forced a zero/sentinel result.
	Error
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Code identifies a diagnostic condition. Codes are stable strings so that
// callers can filter findings without parsing messages.
type Code string

// Diagnostic codes emitted by the analysis, repair and verify packages.
const (
	CodeNoSamples        Code = "section-no-samples"
	CodeSingleSample     Code = "section-single-sample"
	CodeTwoSamples       Code = "section-two-samples"
	CodeShortSection     Code = "section-shorter-than-radii"
	CodeShortSegment     Code = "segment-shorter-than-radius"
	CodeSingleChild      Code = "section-single-child"
	CodeManyChildren     Code = "section-many-children"
	CodeRadiusInversion  Code = "child-radius-exceeds-parent"
	CodeDuplicateSamples Code = "near-duplicate-samples"
	CodeZeroDirection    Code = "zero-length-direction"
	CodeBranchCollision  Code = "branches-intersect-near-soma"
	CodeProfileCollision Code = "soma-profile-points-intersect"
	CodeSamplesRemoved   Code = "repair-samples-removed"
	CodeAuxiliarySample  Code = "repair-auxiliary-sample-inserted"
)

// Diagnostic is one finding about a morphology. Section and Sample are the
// loader-assigned ids of the offending elements; -1 when not applicable.
// Arbor names the arbor type ("axon", "basal dendrite", ...) or is empty.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Arbor    string
	Section  int64
	Sample   int64
	Message  string
}

// Sink receives diagnostics. Implementations must be safe for concurrent
// use: the parallel per-arbor fan-out in analysis and verify delivers
// findings from multiple goroutines.
type Sink interface {
	Report(d Diagnostic)
}

// Emit delivers d to s, tolerating a nil sink.
func Emit(s Sink, d Diagnostic) {
	if s != nil {
		s.Report(d)
	}
}

// Discard is a Sink that drops every diagnostic.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Collector is an in-memory Sink, safe for concurrent use.
// The zero value is ready to use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report appends d to the collected diagnostics.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of everything collected so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)

	return out
}

// Count reports how many collected diagnostics carry severity sev.
func (c *Collector) Count(sev Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, d := range c.diags {
		if d.Severity == sev {
			n++
		}
	}

	return n
}

// CountCode reports how many collected diagnostics carry code code.
func (c *Collector) CountCode(code Code) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, d := range c.diags {
		if d.Code == code {
			n++
		}
	}

	return n
}

// Reset discards everything collected so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.diags = nil
	c.mu.Unlock()
}

// SlogSink forwards diagnostics to a *slog.Logger with consistent field
// names: code, arbor, section, sample. Severity maps Info→Info,
// Warning→Warn, Error→Error.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink wraps l; a nil l uses slog.Default().
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}

	return &SlogSink{logger: l}
}

// Report logs d at the level matching its severity.
func (s *SlogSink) Report(d Diagnostic) {
	attrs := []any{
		"code", string(d.Code),
		"arbor", d.Arbor,
		"section", d.Section,
		"sample", d.Sample,
	}
	switch d.Severity {
	case Error:
		s.logger.Error(d.Message, attrs...)
	case Warning:
		s.logger.Warn(d.Message, attrs...)
	default:
		s.logger.Info(d.Message, attrs...)
	}
}

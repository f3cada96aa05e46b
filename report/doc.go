// Package report defines the diagnostics model shared by the analysis,
// repair and verify packages: a Diagnostic value (severity, code, location,
// message) and the Sink interface it is delivered through.
//
// The core stays side-effect free: nothing in this module writes to an
// ambient logger. Callers inject a Sink explicitly — a Collector to capture
// diagnostics in memory (tests, batch reports), a SlogSink to forward them
// to a *slog.Logger, or Discard to drop them. A nil Sink is always legal and
// behaves like Discard.
//
// Severities:
//
//   - Info    — advisory findings.
//   - Warning — suspicious but usable geometry (two-sample sections,
//     radius inversions, near-duplicate samples).
//   - Error   — degenerate geometry that forces a zero/sentinel result
//     (empty or single-sample sections, undefined directions).
//
// Diagnostics never carry control flow: emitting one does not abort the
// operation that produced it. Fatal conditions are ordinary Go errors on
// the producing API instead.
package report

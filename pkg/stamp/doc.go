// Package stamp captures the build instant and exposes it in structured form.
//
// # Overview
//
// Buildstamp embeds "when was this built" into generated source as fixed
// literals. This package is the capture side of that pipeline: it reads the
// build machine's wall clock exactly once per generator process, normalizes
// the moment to UTC at whole-second granularity, and holds it as an immutable
// [Instant] for the duration of the run. Every output shape rendered from one
// run therefore agrees with every other — the date literal always matches the
// date portion of the datetime literal.
//
// # Capture
//
// Use [Capture] for the memoized per-process instant, or [CaptureWith] to
// capture from an explicit [Clock] (tests substitute fixed or failing
// clocks this way):
//
//	in, err := stamp.Capture()
//	if err != nil {
//	    return err // CLOCK_UNAVAILABLE, the build must abort
//	}
//	fmt.Println(in.DateTimeString()) // 2026-08-30T14:02:11Z
//
// Capture never degrades: if the clock cannot be read the error carries
// errors.ErrCodeClockUnavailable and no default value is produced. A wrong
// build timestamp is worse than no build.
//
// # Structured values
//
// The standard library has no calendar-date or time-of-day type, so this
// package provides [Date] and [TimeOfDay]. Generated code references them for
// the structured date and time shapes; [ParseDate], [ParseTimeOfDay], and
// [ParseDateTime] invert the fixed string formats for round-trip checks.
package stamp

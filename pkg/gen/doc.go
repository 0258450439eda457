// Package gen renders captured build values as Go source literals.
//
// # Overview
//
// This package is the emit side of buildstamp. Given a captured
// [stamp.Instant] and/or [toolchain.Version] and a requested [Shape], it
// produces the literal Go expression for that shape, and assembles whole
// generated files from a set of shapes. The generated file contains only
// fixed literals and constructor-style composite literals, so consumers pay
// no runtime cost — no clock call, no environment lookup, no parsing.
//
// # Shapes
//
// Each shape corresponds to one public entry point of the tool:
//
//	date, time, datetime             structured calendar/clock values
//	date_str, time_str, datetime_str fixed-format strings
//	unix                             seconds since the Unix epoch
//	version                          structured semver (Masterminds constructor)
//	version_str                      the toolchain's version string
//	version_major/_minor/_patch      bare integer literals
//	version_pre/_build               strings, empty when absent
//
// Shapes that render as Go constants are grouped in a const block; shapes
// whose types cannot be constant in Go (time.Time, *semver.Version, struct
// literals) are emitted as package-level vars initialized from literal
// arguments only.
//
// # File generation
//
// [Render] assembles a complete file — generated-code header, package
// clause, the minimal import set for the requested shapes — and runs it
// through go/format so the output is always gofmt-clean. [WriteFile] writes
// atomically via a temp file and rename, so an aborted build never leaves a
// half-written stamp file behind.
package gen

// Package pkg provides the core libraries of the buildstamp tool.
//
// # Overview
//
// Buildstamp embeds build-time facts into Go programs as literal constants.
// The pkg directory is organized along the capture → emit pipeline:
//
//  1. [stamp] - Timestamp capture: the build instant and its structured forms
//  2. [toolchain] - Toolchain-version capture: querying and parsing `go version`
//  3. [gen] - Literal emission: shapes, Go expressions, generated files
//  4. [errors] - Structured errors with machine-readable codes
//  5. [buildinfo] - The tool's own ldflags-injected version information
//
// # Architecture
//
// The data flow through one generator run:
//
//	system clock ──→ stamp.Instant ──┐
//	                                 ├──→ gen.Render ──→ stamp_gen.go
//	go version ──→ toolchain.Version ┘
//
// Each capture pipeline runs at most once per process; every literal emitted
// by one run describes the same instant and the same toolchain. Capture
// failures abort the run instead of degrading, so a build never embeds a
// default or partial value.
package pkg

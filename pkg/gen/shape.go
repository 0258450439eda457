package gen

import (
	"strings"

	"github.com/mlorenz/buildstamp/pkg/errors"
)

// Shape selects how a captured value is rendered. Each shape draws from
// exactly one capture pipeline: timestamp or toolchain version.
type Shape int

const (
	ShapeDate Shape = iota
	ShapeTime
	ShapeDateTime
	ShapeDateStr
	ShapeTimeStr
	ShapeDateTimeStr
	ShapeUnix
	ShapeVersion
	ShapeVersionStr
	ShapeVersionMajor
	ShapeVersionMinor
	ShapeVersionPatch
	ShapeVersionPre
	ShapeVersionBuild
)

// shapeInfo describes one shape's name, generated identifier suffix, and
// rendering properties.
type shapeInfo struct {
	name     string // CLI/config token
	ident    string // identifier suffix in generated code
	desc     string // one-line description for `buildstamp stamps`
	constant bool   // renders as const (vs var)
	version  bool   // draws from the toolchain pipeline (vs timestamp)
}

var shapes = map[Shape]shapeInfo{
	ShapeDate:         {"date", "Date", "calendar date as a stamp.Date literal", false, false},
	ShapeTime:         {"time", "Time", "clock time as a stamp.TimeOfDay literal", false, false},
	ShapeDateTime:     {"datetime", "DateTime", "full moment as a time.Date constructor", false, false},
	ShapeDateStr:      {"date_str", "DateString", "date as a yyyy-MM-dd string constant", true, false},
	ShapeTimeStr:      {"time_str", "TimeString", "time as an hh:mm:ss string constant", true, false},
	ShapeDateTimeStr:  {"datetime_str", "DateTimeString", "moment as a yyyy-MM-ddThh:mm:ssZ string constant", true, false},
	ShapeUnix:         {"unix", "Unix", "seconds since the Unix epoch as an integer constant", true, false},
	ShapeVersion:      {"version", "GoVersion", "toolchain version as a semver.New constructor", false, true},
	ShapeVersionStr:   {"version_str", "GoVersionString", "toolchain version string constant", true, true},
	ShapeVersionMajor: {"version_major", "GoVersionMajor", "major version as an integer constant", true, true},
	ShapeVersionMinor: {"version_minor", "GoVersionMinor", "minor version as an integer constant", true, true},
	ShapeVersionPatch: {"version_patch", "GoVersionPatch", "patch version as an integer constant", true, true},
	ShapeVersionPre:   {"version_pre", "GoVersionPre", "pre-release identifier constant, empty when absent", true, true},
	ShapeVersionBuild: {"version_build", "GoVersionBuild", "build metadata constant, empty when absent", true, true},
}

// shapeOrder fixes the declaration order in generated files and listings.
var shapeOrder = []Shape{
	ShapeDate, ShapeTime, ShapeDateTime,
	ShapeDateStr, ShapeTimeStr, ShapeDateTimeStr,
	ShapeUnix,
	ShapeVersion, ShapeVersionStr,
	ShapeVersionMajor, ShapeVersionMinor, ShapeVersionPatch,
	ShapeVersionPre, ShapeVersionBuild,
}

// String returns the shape's CLI/config token, e.g. "datetime_str".
func (s Shape) String() string { return shapes[s].name }

// Ident returns the identifier this shape declares in generated code, with
// the given prefix applied (e.g. prefix "Build" → "BuildDateTimeString").
func (s Shape) Ident(prefix string) string { return prefix + shapes[s].ident }

// Describe returns a one-line description of the shape.
func (s Shape) Describe() string { return shapes[s].desc }

// IsConst reports whether the shape renders as a Go constant. Shapes whose
// Go types cannot be constant render as package-level vars instead.
func (s Shape) IsConst() bool { return shapes[s].constant }

// NeedsVersion reports whether the shape draws from the toolchain-version
// pipeline rather than the timestamp pipeline.
func (s Shape) NeedsVersion() bool { return shapes[s].version }

// AllShapes returns every shape in declaration order.
func AllShapes() []Shape {
	out := make([]Shape, len(shapeOrder))
	copy(out, shapeOrder)
	return out
}

// ParseShape resolves a CLI/config token to its Shape.
func ParseShape(name string) (Shape, error) {
	token := strings.TrimSpace(name)
	for s, info := range shapes {
		if info.name == token {
			return s, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidShape, "unknown shape %q", name)
}

// ParseShapes resolves a list of tokens, preserving declaration order and
// dropping duplicates.
func ParseShapes(names []string) ([]Shape, error) {
	requested := make(map[Shape]bool, len(names))
	for _, name := range names {
		s, err := ParseShape(name)
		if err != nil {
			return nil, err
		}
		requested[s] = true
	}

	var out []Shape
	for _, s := range shapeOrder {
		if requested[s] {
			out = append(out, s)
		}
	}
	return out, nil
}

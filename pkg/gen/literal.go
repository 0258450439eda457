package gen

import (
	"fmt"
	"strconv"

	"github.com/mlorenz/buildstamp/pkg/errors"
	"github.com/mlorenz/buildstamp/pkg/stamp"
	"github.com/mlorenz/buildstamp/pkg/toolchain"
)

// Import paths referenced by generated code.
const (
	importTime   = "time"
	importStamp  = "github.com/mlorenz/buildstamp/pkg/stamp"
	importSemver = "github.com/Masterminds/semver/v3"
)

// Literal renders the Go expression for shape from the captured values.
// Structured shapes produce constructor-style expressions whose arguments
// are all literals, so the compiler evaluates them without any runtime
// capture. Absent optional version components render as empty string
// literals, never as errors.
func Literal(shape Shape, in stamp.Instant, v toolchain.Version) (string, error) {
	switch shape {
	case ShapeDate:
		d := in.Date()
		return fmt.Sprintf("stamp.Date{Year: %d, Month: time.%s, Day: %d}", d.Year, d.Month, d.Day), nil
	case ShapeTime:
		t := in.TimeOfDay()
		return fmt.Sprintf("stamp.TimeOfDay{Hour: %d, Minute: %d, Second: %d}", t.Hour, t.Minute, t.Second), nil
	case ShapeDateTime:
		d, t := in.Date(), in.TimeOfDay()
		return fmt.Sprintf("time.Date(%d, time.%s, %d, %d, %d, %d, 0, time.UTC)",
			d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second), nil
	case ShapeDateStr:
		return strconv.Quote(in.DateString()), nil
	case ShapeTimeStr:
		return strconv.Quote(in.TimeString()), nil
	case ShapeDateTimeStr:
		return strconv.Quote(in.DateTimeString()), nil
	case ShapeUnix:
		return strconv.FormatInt(in.Unix(), 10), nil
	case ShapeVersion:
		return fmt.Sprintf("semver.New(%d, %d, %d, %q, %q)", v.Major, v.Minor, v.Patch, v.Pre, v.Build), nil
	case ShapeVersionStr:
		return strconv.Quote(v.String()), nil
	case ShapeVersionMajor:
		return strconv.FormatUint(v.Major, 10), nil
	case ShapeVersionMinor:
		return strconv.FormatUint(v.Minor, 10), nil
	case ShapeVersionPatch:
		return strconv.FormatUint(v.Patch, 10), nil
	case ShapeVersionPre:
		return strconv.Quote(v.Pre), nil
	case ShapeVersionBuild:
		return strconv.Quote(v.Build), nil
	default:
		return "", errors.New(errors.ErrCodeInternal, "no literal rendering for shape %d", int(shape))
	}
}

// Value renders the captured value for shape as plain text, the form used by
// `buildstamp print` for Makefile and ldflags pipelines. String shapes print
// without quotes; structured shapes print their fixed string form.
func Value(shape Shape, in stamp.Instant, v toolchain.Version) (string, error) {
	switch shape {
	case ShapeDate, ShapeDateStr:
		return in.DateString(), nil
	case ShapeTime, ShapeTimeStr:
		return in.TimeString(), nil
	case ShapeDateTime, ShapeDateTimeStr:
		return in.DateTimeString(), nil
	case ShapeUnix:
		return strconv.FormatInt(in.Unix(), 10), nil
	case ShapeVersion, ShapeVersionStr:
		return v.String(), nil
	case ShapeVersionMajor:
		return strconv.FormatUint(v.Major, 10), nil
	case ShapeVersionMinor:
		return strconv.FormatUint(v.Minor, 10), nil
	case ShapeVersionPatch:
		return strconv.FormatUint(v.Patch, 10), nil
	case ShapeVersionPre:
		return v.Pre, nil
	case ShapeVersionBuild:
		return v.Build, nil
	default:
		return "", errors.New(errors.ErrCodeInternal, "no value rendering for shape %d", int(shape))
	}
}

// imports returns the import paths the shape's literal expression requires.
func (s Shape) imports() []string {
	switch s {
	case ShapeDate:
		return []string{importTime, importStamp}
	case ShapeTime:
		return []string{importStamp}
	case ShapeDateTime:
		return []string{importTime}
	case ShapeVersion:
		return []string{importSemver}
	default:
		return nil
	}
}

package gen_test

import (
	"fmt"
	"time"

	"github.com/mlorenz/buildstamp/pkg/gen"
	"github.com/mlorenz/buildstamp/pkg/stamp"
	"github.com/mlorenz/buildstamp/pkg/toolchain"
)

func ExampleLiteral() {
	in := stamp.FromTime(time.Date(2026, time.August, 30, 14, 2, 11, 0, time.UTC))
	v := toolchain.Version{Major: 1, Minor: 24, Patch: 5}

	datetime, _ := gen.Literal(gen.ShapeDateTime, in, v)
	unix, _ := gen.Literal(gen.ShapeUnix, in, v)
	version, _ := gen.Literal(gen.ShapeVersion, in, v)

	fmt.Println(datetime)
	fmt.Println(unix)
	fmt.Println(version)
	// Output:
	// time.Date(2026, time.August, 30, 14, 2, 11, 0, time.UTC)
	// 1788098531
	// semver.New(1, 24, 5, "", "")
}

func ExampleValue() {
	in := stamp.FromTime(time.Date(2026, time.August, 30, 14, 2, 11, 0, time.UTC))
	v := toolchain.Version{Major: 1, Minor: 75, Patch: 0, Pre: "beta.2", Build: "abc123"}

	// Plain values suit Makefile and ldflags pipelines.
	datetime, _ := gen.Value(gen.ShapeDateTime, in, v)
	version, _ := gen.Value(gen.ShapeVersion, in, v)

	fmt.Println(datetime)
	fmt.Println(version)
	// Output:
	// 2026-08-30T14:02:11Z
	// 1.75.0-beta.2+abc123
}

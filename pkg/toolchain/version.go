// Package toolchain captures and parses the Go toolchain's self-reported
// version.
//
// The capture pipeline runs `go version` once per generator process, extracts
// the semantic version from the report, and parses it into a structured
// [Version]. A toolchain that cannot be queried, or whose version does not
// decompose into exactly three non-negative integers, aborts the run: a
// misleading version constant is worse than a failed build.
package toolchain

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/mlorenz/buildstamp/pkg/errors"
)

// Version is the structured form of the toolchain's semantic version.
// Major, minor, and patch are always present; Pre and Build are retained
// verbatim from the raw string and empty when absent.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   string
	Build string
}

// Core returns the leading major.minor.patch segment.
func (v Version) Core() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// String reconstructs the full version string, including the pre-release and
// build-metadata suffixes when present.
func (v Version) String() string {
	s := v.Core()
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseVersion parses a raw semantic-version string. The build-metadata
// suffix is split off at the first '+', the pre-release suffix at the first
// '-', and the remaining core segment must split on '.' into exactly three
// non-negative integers. Pre-release and build metadata are opaque
// identifiers and kept verbatim.
func ParseVersion(raw string) (Version, error) {
	if raw == "" {
		return Version{}, errors.New(errors.ErrCodeToolchainUnreadable, "empty version string")
	}

	core := raw
	var pre, build string
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core, build = core[:i], core[i+1:]
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core, pre = core[:i], core[i+1:]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, errors.New(errors.ErrCodeVersionFormat, "version core %q is not major.minor.patch", core)
	}

	nums := make([]uint64, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, errors.New(errors.ErrCodeVersionFormat, "version component %q is not a non-negative integer", part)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Pre: pre, Build: build}, nil
}

var (
	versionOnce sync.Once
	cached      Version
	cachedErr   error
)

// Capture returns the process-wide toolchain version, querying `go version`
// on first use and reusing the parsed result for every subsequent call.
func Capture(ctx context.Context) (Version, error) {
	versionOnce.Do(func() {
		cached, cachedErr = CaptureWith(ctx, ExecRunner{})
	})
	return cached, cachedErr
}

// CaptureWith captures the toolchain version through the given runner.
// Unlike Capture it is not memoized.
func CaptureWith(ctx context.Context, runner Runner) (Version, error) {
	out, err := runner.Run(ctx, "go", "version")
	if err != nil {
		return Version{}, err
	}
	raw, err := versionToken(out)
	if err != nil {
		return Version{}, err
	}
	return ParseVersion(raw)
}

// prereleasePattern matches the Go toolchain's pre-release spellings, e.g.
// "1.24rc1" or "1.23beta2", which omit the patch component.
var prereleasePattern = regexp.MustCompile(`^(\d+)\.(\d+)(rc|beta)(\d+)$`)

// versionToken extracts the semantic version from `go version` output.
//
// Release toolchains report "go version go1.24.5 linux/amd64". Pre-release
// toolchains report forms like "go version go1.24rc1 linux/amd64", which
// normalize to semver pre-release syntax ("1.24.0-rc1") before parsing.
// Development builds ("go version devel ...") carry no usable version and
// are rejected.
func versionToken(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) < 3 || fields[0] != "go" || fields[1] != "version" {
		return "", errors.New(errors.ErrCodeToolchainUnreadable, "unexpected go version output %q", out)
	}

	token := fields[2]
	if token == "devel" || !strings.HasPrefix(token, "go") {
		return "", errors.New(errors.ErrCodeToolchainUnreadable, "toolchain reports no release version in %q", out)
	}
	raw := strings.TrimPrefix(token, "go")

	if m := prereleasePattern.FindStringSubmatch(raw); m != nil {
		raw = fmt.Sprintf("%s.%s.0-%s%s", m[1], m[2], m[3], m[4])
	}
	return raw, nil
}

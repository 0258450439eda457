package gen

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mlorenz/buildstamp/pkg/errors"
	"github.com/mlorenz/buildstamp/pkg/stamp"
	"github.com/mlorenz/buildstamp/pkg/toolchain"
)

// header follows the convention recognized by Go tooling; files carrying it
// are skipped by linters and flagged read-only by editors.
const header = "// Code generated by buildstamp. DO NOT EDIT."

// FileOptions configures one generated file.
type FileOptions struct {
	Package string  // package clause of the generated file
	Prefix  string  // identifier prefix, e.g. "Build" → BuildDateTimeString
	Shapes  []Shape // shapes to declare, rendered in canonical order
}

// Render assembles a complete generated Go source file declaring the given
// shapes from the captured values, and formats it with go/format. A result
// that fails formatting is an internal invariant violation, never written
// out.
func Render(opts FileOptions, in stamp.Instant, v toolchain.Version) ([]byte, error) {
	if opts.Package == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "generated file needs a package name")
	}
	if len(opts.Shapes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no shapes requested")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\npackage %s\n\n", header, opts.Package)
	writeImports(&b, opts.Shapes)

	var consts, vars []string
	for _, s := range opts.Shapes {
		expr, err := Literal(s, in, v)
		if err != nil {
			return nil, err
		}
		ident := s.Ident(opts.Prefix)
		decl := fmt.Sprintf("\t// %s is fixed at generation time: %s.\n\t%s = %s\n",
			ident, s.Describe(), ident, expr)
		if s.IsConst() {
			consts = append(consts, decl)
		} else {
			vars = append(vars, decl)
		}
	}

	if len(consts) > 0 {
		b.WriteString("const (\n" + strings.Join(consts, "\n") + ")\n\n")
	}
	if len(vars) > 0 {
		b.WriteString("var (\n" + strings.Join(vars, "\n") + ")\n")
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "generated source does not format")
	}
	return src, nil
}

// writeImports emits the minimal import block for the requested shapes,
// standard library first, then third-party paths.
func writeImports(b *strings.Builder, requested []Shape) {
	seen := map[string]bool{}
	var std, ext []string
	for _, s := range requested {
		for _, path := range s.imports() {
			if seen[path] {
				continue
			}
			seen[path] = true
			if strings.Contains(path, ".") {
				ext = append(ext, path)
			} else {
				std = append(std, path)
			}
		}
	}
	if len(std) == 0 && len(ext) == 0 {
		return
	}

	sort.Strings(std)
	sort.Strings(ext)

	b.WriteString("import (\n")
	for _, path := range std {
		fmt.Fprintf(b, "\t%q\n", path)
	}
	if len(std) > 0 && len(ext) > 0 {
		b.WriteString("\n")
	}
	for _, path := range ext {
		fmt.Fprintf(b, "\t%q\n", path)
	}
	b.WriteString(")\n\n")
}

// WriteFile writes the rendered source to path atomically: the content lands
// in a temp file in the target directory and is renamed into place, so an
// interrupted run never leaves a truncated stamp file for the compiler to
// choke on.
func WriteFile(path string, src []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create temp file in %s", dir)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "chmod %s", tmp.Name())
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "rename into %s", path)
	}
	return nil
}

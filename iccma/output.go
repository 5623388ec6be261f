package iccma

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dungaf/framework"
)

// namesOf resolves ext's members back to argument names, sorted by value
// for deterministic output.
func namesOf(f *framework.Framework, ext framework.ArgSet) []string {
	values := ext.Sorted()
	names := make([]string, len(values))
	for i, v := range values {
		name, _ := f.NameOf(v)
		names[i] = name
	}
	return names
}

func bracket(names []string) string {
	return "[" + strings.Join(names, ",") + "]"
}

// WriteDecision writes the ICCMA DC/DS result: "YES" or "NO".
func WriteDecision(w io.Writer, accepted bool) error {
	verdict := "NO"
	if accepted {
		verdict = "YES"
	}
	_, err := fmt.Fprintln(w, verdict)
	return err
}

// WriteExtension writes the ICCMA SE result: a bracketed, comma-separated
// argument-name list, or "NO" when ok is false (no extension exists).
func WriteExtension(w io.Writer, f *framework.Framework, ext framework.ArgSet, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, "NO")
		return err
	}
	_, err := fmt.Fprintln(w, bracket(namesOf(f, ext)))
	return err
}

// WriteExtensions writes the ICCMA EE result: a bracketed list of
// bracketed argument-name lists, e.g. "[[a,b],[c],[]]". The outer brackets
// are always present, even when exts is empty.
func WriteExtensions(w io.Writer, f *framework.Framework, exts []framework.ArgSet) error {
	parts := make([]string, len(exts))
	for i, ext := range exts {
		parts[i] = bracket(namesOf(f, ext))
	}
	_, err := fmt.Fprintln(w, "["+strings.Join(parts, ",")+"]")
	return err
}

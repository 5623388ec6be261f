package format

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/dungaf/framework"
)

// apxLine matches "<type>(<args>)." — e.g. "arg(a)." or "att( a , b )." —
// tolerating whitespace around the parentheses and comma. Lines that do
// not match are ignored, both in strict and non-strict mode: APX permits
// interleaved comments and directives this parser does not care about.
var apxLine = regexp.MustCompile(`^(?P<type>\w+)\s*\((?P<args>[\w,\s]+)\)\.`)

// ParseAPX reads the Aspartix format: "arg(NAME)." declares an argument,
// "att(A,B)." declares an attack. See ParseTGF for the strict-mode
// contract.
func ParseAPX(r io.Reader, strict bool) (names []string, attacks []framework.Attack, err error) {
	var diagnostics *multierror.Error
	declared := make(map[string]struct{})
	attackSeen := make(map[[2]string]struct{})

	typeIdx := apxLine.SubexpIndex("type")
	argsIdx := apxLine.SubexpIndex("args")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m := apxLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		switch m[typeIdx] {
		case "arg":
			argument := strings.TrimSpace(m[argsIdx])
			if strict {
				if len(strings.Fields(argument)) > 1 || strings.Contains(argument, ",") {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrMalformedArgument, argument))
				}
				if _, dup := declared[argument]; dup {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrDuplicateArgument, argument))
				}
			}
			declared[argument] = struct{}{}
			names = append(names, argument)

		case "att":
			parts := strings.Split(m[argsIdx], ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			if len(parts) != 2 {
				if strict {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrMalformedAttack, line))
				}
				continue
			}

			from, to := parts[0], parts[1]
			if strict {
				if _, ok := declared[from]; !ok {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrUnknownArgument, from))
				}
				if _, ok := declared[to]; !ok {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrUnknownArgument, to))
				}
				key := [2]string{from, to}
				if _, dup := attackSeen[key]; dup {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q -> %q", ErrDuplicateAttack, from, to))
				}
				attackSeen[key] = struct{}{}
			}

			attacks = append(attacks, framework.Attack{From: from, To: to})
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, nil, scanErr
	}

	return names, attacks, diagnostics.ErrorOrNil()
}

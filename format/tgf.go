package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/dungaf/framework"
)

// ParseTGF reads the Trivial Graph Format: argument names, one per line,
// followed by a single "#" pivot line, followed by "<attacker> <attacked>"
// attack lines. Blank lines are skipped everywhere.
//
// When strict is false, parsing is purely mechanical: the first "#" line
// seen pivots from argument- to attack-parsing, and any attack line that
// does not split into exactly two fields is skipped rather than rejected.
// When strict is true, every malformed-input rule is checked in the same
// pass and every violation found is aggregated into the returned error via
// go-multierror, instead of stopping at the first.
func ParseTGF(r io.Reader, strict bool) (names []string, attacks []framework.Attack, err error) {
	var diagnostics *multierror.Error
	declared := make(map[string]struct{})
	attackSeen := make(map[[2]string]struct{})

	hasPivot := false
	separatorCount := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "#" {
			separatorCount++
			if !hasPivot {
				hasPivot = true
			} else if strict {
				diagnostics = multierror.Append(diagnostics, ErrMultipleSeparators)
			}
			continue
		}

		if !hasPivot {
			if strict {
				if len(strings.Fields(line)) > 1 || strings.Contains(line, ",") {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrMalformedArgument, line))
				}
				if _, dup := declared[line]; dup {
					diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrDuplicateArgument, line))
				}
			}
			declared[line] = struct{}{}
			names = append(names, line)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			if strict {
				diagnostics = multierror.Append(diagnostics, fmt.Errorf("%w: %q", ErrMalformedAttack, line))
			}
			continue
		}

		from, to := fields[0], fields[1]
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

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, nil, scanErr
	}

	if strict && separatorCount == 0 {
		diagnostics = multierror.Append(diagnostics, ErrMissingSeparator)
	}

	return names, attacks, diagnostics.ErrorOrNil()
}

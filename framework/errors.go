package framework

import "errors"

// ErrDuplicateArgument is returned by New when the same argument name is
// declared more than once.
var ErrDuplicateArgument = errors.New("framework: duplicate argument name")

// ErrUnknownArgument is returned by New when an attack references an
// argument name that is not declared. The lookups ValueOf/NameOf report a
// missing argument through their bool result instead.
var ErrUnknownArgument = errors.New("framework: unknown argument")

// ErrDuplicateAttack is returned by New when the same (attacker, attacked)
// pair is declared more than once.
var ErrDuplicateAttack = errors.New("framework: duplicate attack")

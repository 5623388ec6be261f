package format

import "errors"

var (
	// ErrUnsupportedFormat is returned by Parse for a fileFormat outside
	// SupportedFormats().
	ErrUnsupportedFormat = errors.New("format: unsupported file format")

	// ErrMissingSeparator and ErrMultipleSeparators are strict-mode-only
	// TGF structural diagnostics.
	ErrMissingSeparator   = errors.New(`format: TGF file does not contain a "#" separator`)
	ErrMultipleSeparators = errors.New(`format: TGF file contains more than one "#" separator`)

	// ErrMalformedArgument, ErrDuplicateArgument, ErrMalformedAttack,
	// ErrUnknownArgument and ErrDuplicateAttack are strict-mode content
	// diagnostics, shared between the TGF and APX parsers.
	ErrMalformedArgument = errors.New("format: argument name contains whitespace or comma")
	ErrDuplicateArgument = errors.New("format: argument declared more than once")
	ErrMalformedAttack   = errors.New("format: attack does not contain exactly two arguments")
	ErrUnknownArgument   = errors.New("format: attack references an undeclared argument")
	ErrDuplicateAttack   = errors.New("format: attack declared more than once")
)

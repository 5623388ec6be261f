package format_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungaf/format"
)

func TestParseAPXWellFormed(t *testing.T) {
	src := "arg(a).\narg(b).\natt(a,b).\n"
	names, attacks, err := format.ParseAPX(strings.NewReader(src), true)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)
	require.Len(t, attacks, 1)
	require.Equal(t, "a", attacks[0].From)
	require.Equal(t, "b", attacks[0].To)
}

func TestParseAPXToleratesWhitespace(t *testing.T) {
	src := "arg( a ).\narg(b).\natt( a , b ).\n"
	names, attacks, err := format.ParseAPX(strings.NewReader(src), true)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)
	require.Len(t, attacks, 1)
}

func TestParseAPXSkipsUnrecognisedLines(t *testing.T) {
	src := "% a comment\narg(a).\nnonsense line\natt(a,a).\n"
	names, attacks, err := format.ParseAPX(strings.NewReader(src), false)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, names)
	require.Len(t, attacks, 1)
}

func TestParseAPXStrictUnknownArgument(t *testing.T) {
	src := "arg(a).\natt(a,ghost).\n"
	_, _, err := format.ParseAPX(strings.NewReader(src), true)
	require.Error(t, err)
	require.True(t, errors.Is(err, format.ErrUnknownArgument))
}

func TestParseAPXStrictDuplicateArgument(t *testing.T) {
	src := "arg(a).\narg(a).\n"
	_, _, err := format.ParseAPX(strings.NewReader(src), true)
	require.Error(t, err)
	require.True(t, errors.Is(err, format.ErrDuplicateArgument))
}

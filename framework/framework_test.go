package framework_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungaf/framework"
)

func mustNew(t *testing.T, names []string, attacks []framework.Attack) *framework.Framework {
	t.Helper()
	f, err := framework.New(names, attacks)
	require.NoError(t, err)
	return f
}

func TestNewRejectsDuplicateArgument(t *testing.T) {
	_, err := framework.New([]string{"a", "a"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, framework.ErrDuplicateArgument))
}

func TestNewRejectsUnknownArgumentInAttack(t *testing.T) {
	_, err := framework.New([]string{"a"}, []framework.Attack{{From: "a", To: "ghost"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, framework.ErrUnknownArgument))
}

func TestNewRejectsDuplicateAttack(t *testing.T) {
	attacks := []framework.Attack{{From: "a", To: "b"}, {From: "a", To: "b"}}
	_, err := framework.New([]string{"a", "b"}, attacks)
	require.Error(t, err)
	assert.True(t, errors.Is(err, framework.ErrDuplicateAttack))
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	f := mustNew(t, []string{"a", "b", "c"}, []framework.Attack{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	})

	av, _ := f.ValueOf("a")
	bv, _ := f.ValueOf("b")
	cv, _ := f.ValueOf("c")

	assert.True(t, f.AttackedBy(av).Contains(bv))
	assert.True(t, f.AttackersOf(bv).Contains(av))
	assert.True(t, f.AttackedBy(bv).Contains(cv))
	assert.True(t, f.AttackersOf(cv).Contains(bv))
	assert.Equal(t, 3, f.Len())
}

func TestCharacteristicMonotone(t *testing.T) {
	// a -> b -> c, isolated d: a defends itself (no attackers) so F(empty)
	// should include a and, by repeated application, c.
	f := mustNew(t, []string{"a", "b", "c", "d"}, []framework.Attack{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	})
	av, _ := f.ValueOf("a")
	cv, _ := f.ValueOf("c")
	dv, _ := f.ValueOf("d")

	s0 := framework.NewArgSet()
	s1 := f.Characteristic(s0)
	assert.True(t, s1.Contains(av))
	assert.True(t, s1.Contains(dv))
	assert.False(t, s1.Contains(cv))

	s2 := f.Characteristic(s1)
	assert.True(t, s2.IsSubsetOf(f.Characteristic(s2)) || s2.Equal(f.Characteristic(s2)))
	assert.True(t, s1.IsSubsetOf(s2))
	assert.True(t, s2.Contains(cv))
}

func TestCharacteristicMonotoneHandPicked(t *testing.T) {
	// S subset T => F(S) subset F(T), for one hand-picked AF and pair S, T.
	f := mustNew(t, []string{"a", "b", "c", "d", "e"}, []framework.Attack{
		{From: "a", To: "b"},
		{From: "b", To: "a"},
		{From: "b", To: "c"},
		{From: "c", To: "d"},
		{From: "e", To: "e"},
	})

	s := framework.NewArgSet(1)
	t2 := framework.NewArgSet(1, 3, 4)
	require.True(t, s.IsSubsetOf(t2))

	fs := f.Characteristic(s)
	ft := f.Characteristic(t2)
	assert.True(t, fs.IsSubsetOf(ft))
}

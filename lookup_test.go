package llll_test

import (
	"testing"

	"github.com/kana/go-llll"

	"github.com/stretchr/testify/require"
)

func TestToDict(t *testing.T) {
	d, err := llll.ToDict(llll.Of("apple", "banana", "cherry"), func(s string) byte { return s[0] })

	require.NoError(t, err)
	require.Equal(t, map[byte]string{'a': "apple", 'b': "banana", 'c': "cherry"}, d)
}

func TestToDictBy(t *testing.T) {
	d, err := llll.ToDictBy(llll.Of("ada", "basic", "cl"),
		func(s string) byte { return s[0] },
		func(s string) int { return len(s) })

	require.NoError(t, err)
	require.Equal(t, map[byte]int{'a': 3, 'b': 5, 'c': 2}, d)
}

func TestToDict_DuplicateKey(t *testing.T) {
	// "ada" and "csp" both have length 3; the collision is reported at the
	// element that collides.
	_, err := llll.ToDict(llll.Of("ada", "basic", "csp"), func(s string) int { return len(s) })

	require.ErrorIs(t, err, llll.ErrDuplicateKey)
	require.Contains(t, err.Error(), "csp")
}

func TestToLookup(t *testing.T) {
	l := llll.ToLookup(llll.Of("ada", "awk", "bash", "bcpl", "c"),
		func(s string) byte { return s[0] })

	require.Equal(t, 3, l.Len())
	require.Equal(t, []byte{'a', 'b', 'c'}, l.Keys())
	require.Equal(t, []string{"ada", "awk"}, llll.ToSlice(l.Get('a')))
	require.Equal(t, []string{"bash", "bcpl"}, llll.ToSlice(l.Get('b')))
	require.Equal(t, []string{"c"}, llll.ToSlice(l.Get('c')))
}

func TestToLookupBy(t *testing.T) {
	l := llll.ToLookupBy(llll.Of("ada", "awk", "bash", "bcpl", "c"),
		func(s string) byte { return s[0] },
		func(s string) int { return len(s) })

	require.Equal(t, []int{3, 3}, llll.ToSlice(l.Get('a')))
	require.Equal(t, []int{4, 4}, llll.ToSlice(l.Get('b')))
	require.Equal(t, []int{1}, llll.ToSlice(l.Get('c')))
}

func TestLookup_KeysKeepFirstSeenOrder(t *testing.T) {
	l := llll.ToLookup(llll.Of("cherry", "apple", "cranberry", "banana", "avocado"),
		func(s string) byte { return s[0] })

	require.Equal(t, []byte{'c', 'a', 'b'}, l.Keys())
}

func TestLookup_MissingKey(t *testing.T) {
	l := llll.ToLookup(llll.Of("ada"), func(s string) byte { return s[0] })

	require.False(t, l.Has('z'))
	require.Empty(t, llll.ToSlice(l.Get('z')))
	require.True(t, l.Has('a'))
}

func TestToLookup_EvaluatesFunctionsOncePerElement(t *testing.T) {
	keyCalls, valCalls := 0, 0
	llll.ToLookupBy(llll.Of(1, 2, 2, 3),
		func(x int) int { keyCalls++; return x },
		func(x int) int { valCalls++; return x * 10 })

	require.Equal(t, 4, keyCalls)
	require.Equal(t, 4, valCalls)
}

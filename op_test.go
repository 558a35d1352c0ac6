package llll_test

import (
	"strconv"
	"testing"

	"github.com/kana/go-llll"

	"github.com/stretchr/testify/require"
)

func TestOp_ConstructionDoesNoWork(t *testing.T) {
	calls := 0
	op := llll.Bind(llll.Where[int], func(x int) bool {
		calls++
		return true
	})

	q := op.Apply(llll.Range(0, 5))
	require.Zero(t, calls) // still lazy after attachment

	llll.ToSlice(q)
	require.Equal(t, 5, calls)
}

func TestOp_IsReusableAcrossSources(t *testing.T) {
	evens := llll.Bind(llll.Where[int], isEven)

	require.Equal(t, []int{0, 2, 4}, llll.ToSlice(evens.Apply(llll.Range(0, 6))))
	require.Equal(t, []int{8, 12}, llll.ToSlice(evens.Apply(llll.Of(7, 8, 9, 12))))

	// Applying again to the first source reproduces the same result: the op
	// holds no iteration state.
	require.Equal(t, []int{0, 2, 4}, llll.ToSlice(evens.Apply(llll.Range(0, 6))))
}

func TestApply_FreeFunctionForm(t *testing.T) {
	take3 := llll.Bind(llll.Take[int], 3)

	require.Equal(t, []int{0, 1, 2}, llll.ToSlice(llll.Apply(llll.Range(0, 10), take3)))
}

func TestOp_EagerReducer(t *testing.T) {
	countEvens := llll.Op[int, int](func(q llll.Query[int]) int {
		return llll.Count(q, isEven)
	})

	require.Equal(t, 5, countEvens.Apply(llll.Range(0, 10)))
	require.Equal(t, 0, countEvens.Apply(llll.Of(1, 3, 5)))
}

func TestBind2(t *testing.T) {
	byInitial := llll.Bind2(llll.ToLookupBy[string, byte, int],
		func(s string) byte { return s[0] },
		func(s string) int { return len(s) })

	l := byInitial.Apply(llll.Of("ada", "awk", "c"))

	require.Equal(t, []int{3, 3}, llll.ToSlice(l.Get('a')))
	require.Equal(t, []int{1}, llll.ToSlice(l.Get('c')))
}

func TestChain(t *testing.T) {
	pipeline := llll.Chain(
		llll.Bind(llll.Where[int], isEven),
		llll.Chain(
			llll.Bind(llll.Select[int, string], strconv.Itoa),
			llll.Op[string, []string](llll.ToSlice[string]),
		),
	)

	require.Equal(t, []string{"0", "2", "4"}, pipeline.Apply(llll.Range(0, 6)))
	require.Equal(t, []string{"4", "8"}, pipeline.Apply(llll.Of(3, 4, 7, 8)))
}

func TestChain_StaysLazyUntilTerminal(t *testing.T) {
	calls := 0
	stage := llll.Chain(
		llll.Bind(llll.Select[int, int], func(x int) int { calls++; return x * 2 }),
		llll.Bind(llll.Take[int], 2),
	)

	q := stage.Apply(llll.Range(0, 100))
	require.Zero(t, calls)

	require.Equal(t, []int{0, 2}, llll.ToSlice(q))
	require.Equal(t, 2, calls) // Take bounded the projection
}

func TestPipe(t *testing.T) {
	got := llll.Range(0, 10).Pipe(
		llll.Bind(llll.Where[int], isEven),
		llll.Bind(llll.Skip[int], 1),
		llll.Bind(llll.Take[int], 2),
	)

	require.Equal(t, []int{2, 4}, llll.ToSlice(got))
}

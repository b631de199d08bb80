package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/branchbound/bnbsearch/frontier"
)

func TestBFSPopsMaximumFirst(t *testing.T) {
	b := frontier.NewBFS()
	low := newTestState(0, 1, "low")
	high := newTestState(0, 10, "high")
	mid := newTestState(0, 5, "mid")
	b.Push(low)
	b.Push(high)
	b.Push(mid)

	got, ok := b.PopNext()
	require.True(t, ok)
	require.Equal(t, high, got)

	got, ok = b.PopNext()
	require.True(t, ok)
	require.Equal(t, mid, got)

	got, ok = b.PopNext()
	require.True(t, ok)
	require.Equal(t, low, got)
}

func TestBFSSkipsDominatedOnPop(t *testing.T) {
	b := frontier.NewBFS()
	best := newTestState(0, 10, "best")
	best.SetDominated()
	second := newTestState(0, 5, "second")
	b.Push(best)
	b.Push(second)

	got, ok := b.PopNext()
	require.True(t, ok)
	require.Equal(t, second, got)
}

func TestBFSLenAndIsEmpty(t *testing.T) {
	b := frontier.NewBFS()
	require.True(t, b.IsEmpty())
	b.Push(newTestState(0, 1, "a"))
	b.Push(newTestState(0, 2, "b"))
	require.Equal(t, 2, b.Len())
}

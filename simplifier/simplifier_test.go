package simplifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/isoline"
	"github.com/cartocrow/isosimplify/ladder"
)

func p(x, y float64) geomkernel.Point { return geomkernel.Point{X: x, Y: y} }

func parallelIsolines() []isoline.Input {
	return []isoline.Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0.05), p(2, -0.05), p(3, 0.05), p(4, 0)}},
		{Points: []geomkernel.Point{p(0, 5), p(1, 5.05), p(2, 4.95), p(3, 5.05), p(4, 5)}},
	}
}

func TestNewBuildsInitialLaddersAndMatching(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)
	require.Equal(t, 10, s.VertexCount())
	require.NotZero(t, s.LadderCount())
}

func TestStepReducesVertexCount(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)

	before := s.VertexCount()
	ok, err := s.Step()
	require.NoError(t, err)
	if ok {
		require.Less(t, s.VertexCount(), before)
	}
}

func TestSimplifyNeverIncreasesVertexCount(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)

	before := s.VertexCount()
	_, err = s.Simplify(4)
	require.NoError(t, err)
	require.LessOrEqual(t, s.VertexCount(), before)
}

func TestSimplifyRejectsNegativeTarget(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)

	_, err = s.Simplify(-1)
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestDykenSimplifyNeverIncreasesVertexCount(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)

	before := s.store.VertexCount()
	DykenSimplify(s, 6, 0.5)
	require.LessOrEqual(t, s.store.VertexCount(), before)
}

func TestDykenSimplifyRejectsNegativeTarget(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)

	require.False(t, DykenSimplify(s, -1, 0.5))
}

// TestNextLadderDefersIntersectingLadderInsteadOfDiscarding covers
// testable property #5: a ladder parked at +Inf cost because its
// replacement currently intersects other geometry must stay reachable
// (not be permanently dropped) until the blocking site is actually
// removed and reviveLadders clears it.
func TestNextLadderDefersIntersectingLadderInsteadOfDiscarding(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)

	var victim *ladder.Ladder
	for l := range s.handles {
		if !l.Valid {
			continue
		}
		victim = l
		break
	}
	require.NotNil(t, victim)

	for l, h := range s.handles {
		if l == victim {
			continue
		}
		s.queue.Remove(h)
		delete(s.handles, l)
	}
	require.Equal(t, 1, s.LadderCount())

	victim.Intersects = true
	victim.Cost = math.Inf(1)
	s.queue.Update(s.handles[victim], math.Inf(1))

	_, ok := s.NextLadder()
	require.False(t, ok, "a deferred ladder must not be surfaced as the next collapse candidate")
	require.Equal(t, 1, s.LadderCount(), "the deferred ladder must be reinserted, not discarded")
	_, tracked := s.handles[victim]
	require.True(t, tracked)

	blocker := rungKey{a: p(42, 42), b: p(42, 42)}
	s.edgeToIntersectsLadders[blocker] = []*ladder.Ladder{victim}
	s.reviveLadders([]rungKey{blocker})

	require.False(t, victim.Intersects)
	require.NotEqual(t, math.Inf(1), victim.Cost, "reviveLadders must recompute a real cost")

	revived, ok := s.NextLadder()
	require.True(t, ok)
	require.Same(t, victim, revived)
}

func TestClearRebuildsLadderQueue(t *testing.T) {
	s, err := New(parallelIsolines())
	require.NoError(t, err)

	count := s.LadderCount()
	s.Clear()
	require.Equal(t, count, s.LadderCount())
}

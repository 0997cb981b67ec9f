package passes

import (
	"testing"

	"github.com/RuneBox/symmap/match"
	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

func TestClassCollectorPromotesEligibleEntryAboveFloor(t *testing.T) {
	require := require.New(t)

	e := buildEngine(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil))
	e.Config.ClassFloor = 1
	e.Config.MinVotes = 3
	e.Config.MinGap = 2

	e.VoteClass("A.a", "B.x", match.VeryStrong) // first=5
	e.VoteClass("A.a", "B.y", match.Weak)        // second=1, gap=4

	NewClassCollector().Run(e)

	tgt, ok := e.Classes.ConfirmedTarget("A.a")
	require.True(ok)
	require.Equal("B.x", tgt)
}

func TestClassCollectorSkipsEntryBelowMinVotes(t *testing.T) {
	require := require.New(t)

	e := buildEngine(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil))
	e.Config.ClassFloor = 1
	e.Config.MinVotes = 10
	e.Config.MinGap = 0

	e.VoteClass("A.a", "B.x", match.Weak)

	NewClassCollector().Run(e)

	_, ok := e.Classes.ConfirmedTarget("A.a")
	require.False(ok)
}

func TestClassCollectorNeverDoubleClaimsATarget(t *testing.T) {
	require := require.New(t)

	e := buildEngine(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil))
	e.Config.ClassFloor = 10
	e.Config.MinVotes = 1
	e.Config.MinGap = 0

	e.VoteClass("A.a", "B.x", match.Strong)
	e.VoteClass("A.b", "B.x", match.Strong)

	NewClassCollector().Run(e)

	_, aConfirmed := e.Classes.ConfirmedTarget("A.a")
	_, bConfirmed := e.Classes.ConfirmedTarget("A.b")
	require.True(aConfirmed != bConfirmed, "exactly one of the two equally-scored claimants wins the shared target")
}

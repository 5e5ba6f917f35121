package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

func TestTierForPercentage(t *testing.T) {
	cases := []struct {
		percentage float64
		tier       types.ReadinessTier
	}{
		{100, types.TierReadyForSprint},
		{90, types.TierReadyForSprint},
		{89.999, types.TierMinorRefinements},
		{75, types.TierMinorRefinements},
		{74.999, types.TierNeedsDiscussion},
		{50, types.TierNeedsDiscussion},
		{49.999, types.TierSignificantRefinement},
		{0, types.TierSignificantRefinement},
	}

	for _, tc := range cases {
		gt.Equal(t, types.TierForPercentage(tc.percentage), tc.tier)
	}
}

func TestReadinessTierIsValid(t *testing.T) {
	for _, tier := range types.AllTiers() {
		gt.True(t, tier.IsValid())
	}
	gt.False(t, types.ReadinessTier("Done").IsValid())
	gt.False(t, types.ReadinessTier("").IsValid())
}

func TestAllTiersOrder(t *testing.T) {
	tiers := types.AllTiers()
	gt.A(t, tiers).Length(4)
	gt.Equal(t, tiers[0], types.TierReadyForSprint)
	gt.Equal(t, tiers[3], types.TierSignificantRefinement)
}

func TestNewSessionID(t *testing.T) {
	first, err := types.NewSessionID()
	gt.NoError(t, err)
	gt.V(t, first).NotEqual(types.SessionID(""))

	second, err := types.NewSessionID()
	gt.NoError(t, err)
	gt.V(t, second).NotEqual(first)
}

func TestItemKeyProjectKey(t *testing.T) {
	gt.Equal(t, types.ItemKey("PROJ-101").ProjectKey(), "PROJ")
	gt.Equal(t, types.ItemKey("APP-1-2").ProjectKey(), "APP")
	gt.Equal(t, types.ItemKey("NOKEY").ProjectKey(), "NOKEY")
}

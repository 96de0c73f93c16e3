package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sociograph/domain/social"
)

// diamond builds the reference scenario: 1-2, 1-3, 2-4, 3-4.
func diamond() *social.Network {
	n := social.NewNetwork()
	n.AddConnection(1, 2)
	n.AddConnection(1, 3)
	n.AddConnection(2, 4)
	n.AddConnection(3, 4)
	return n
}

func TestDiamondScenario(t *testing.T) {
	engine := NewEngine(diamond())

	t.Run("common friends", func(t *testing.T) {
		// User 4 shares friends 2 and 3 with user 1.
		got := engine.ByCommonFriends(1)
		assert.Equal(t, []Recommendation{{UserID: 4, Score: 2}}, got)
	})

	t.Run("network distance", func(t *testing.T) {
		got := engine.ByNetworkDistance(1, 2)
		assert.Equal(t, []Recommendation{{UserID: 4, Score: 2}}, got)
	})

	t.Run("weighted", func(t *testing.T) {
		// Candidate 4 is reached through friends 2 and 3, so the term
		// 2*2 + 1/(2+1) accumulates twice: trunc(2*4.333) = 8.
		got := engine.Weighted(1, 2)
		assert.Equal(t, []Recommendation{{UserID: 4, Score: 8}}, got)
	})
}

func TestWeightedSinglePathTruncates(t *testing.T) {
	// 1-2, 2-4, 4-5: candidate 4 has one mutual friend and distance 2,
	// score 1*2 + 1/3 = 2.333..., reported as 2.
	n := social.NewNetwork()
	n.AddConnection(1, 2)
	n.AddConnection(2, 4)
	n.AddConnection(4, 5)

	got := NewEngine(n).Weighted(1, 3)

	assert.Equal(t, []Recommendation{{UserID: 4, Score: 2}}, got)
}

func TestTiesBreakByAscendingUserID(t *testing.T) {
	// Candidates 4 and 5 each share exactly one friend with user 1 and
	// sit at distance 2.
	n := social.NewNetwork()
	n.AddConnection(1, 2)
	n.AddConnection(1, 3)
	n.AddConnection(2, 5)
	n.AddConnection(3, 4)

	engine := NewEngine(n)

	assert.Equal(t, []Recommendation{{UserID: 4, Score: 1}, {UserID: 5, Score: 1}},
		engine.ByCommonFriends(1))
	assert.Equal(t, []Recommendation{{UserID: 4, Score: 2}, {UserID: 5, Score: 2}},
		engine.ByNetworkDistance(1, 2))
	assert.Equal(t, []Recommendation{{UserID: 4, Score: 2}, {UserID: 5, Score: 2}},
		engine.Weighted(1, 2))
}

func TestNetworkDistanceOrdering(t *testing.T) {
	// 1-2-3-4-5 chain: 3 at distance 2 ranks before 4 at distance 3.
	n := social.NewNetwork()
	n.AddConnection(1, 2)
	n.AddConnection(2, 3)
	n.AddConnection(3, 4)
	n.AddConnection(4, 5)

	got := NewEngine(n).ByNetworkDistance(1, 3)

	require.Len(t, got, 2)
	assert.Equal(t, Recommendation{UserID: 3, Score: 2}, got[0])
	assert.Equal(t, Recommendation{UserID: 4, Score: 3}, got[1])
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Score, got[i-1].Score)
	}
	for _, rec := range got {
		assert.GreaterOrEqual(t, rec.Score, 2)
		assert.LessOrEqual(t, rec.Score, 3)
	}
}

func TestStrategiesNeverRecommendTargetOrDirectFriends(t *testing.T) {
	n := social.NewNetwork()
	n.AddConnection(1, 2)
	n.AddConnection(1, 3)
	n.AddConnection(2, 3)
	n.AddConnection(2, 4)
	n.AddConnection(3, 5)
	n.AddConnection(4, 5)
	n.AddConnection(5, 6)

	engine := NewEngine(n)
	friends := n.Friends(1)

	strategies := map[string][]Recommendation{
		"common friends":   engine.ByCommonFriends(1),
		"network distance": engine.ByNetworkDistance(1, 4),
		"weighted":         engine.Weighted(1, 4),
	}

	for name, results := range strategies {
		for _, rec := range results {
			assert.NotEqual(t, social.UserID(1), rec.UserID, "%s recommended the target", name)
			assert.NotContains(t, friends, rec.UserID, "%s recommended a direct friend", name)
		}
	}
}

func TestIsolatedUsersAreNotCandidates(t *testing.T) {
	n := diamond()
	n.AddUser(9)

	engine := NewEngine(n)

	for _, rec := range engine.ByNetworkDistance(1, 5) {
		assert.NotEqual(t, social.UserID(9), rec.UserID)
	}
	for _, rec := range engine.Weighted(1, 5) {
		assert.NotEqual(t, social.UserID(9), rec.UserID)
	}
}

func TestUnknownTargetYieldsEmptyLists(t *testing.T) {
	empty := NewEngine(social.NewNetwork())
	populated := NewEngine(diamond())

	for name, engine := range map[string]*Engine{"empty graph": empty, "unknown id": populated} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, engine.ByCommonFriends(42))
			assert.Empty(t, engine.ByNetworkDistance(42, 3))
			assert.Empty(t, engine.Weighted(42, 3))
		})
	}
}

func TestStrategiesDoNotMutateTheNetwork(t *testing.T) {
	n := diamond()
	before := n.Snapshot()

	engine := NewEngine(n)
	engine.ByCommonFriends(1)
	engine.ByNetworkDistance(1, 3)
	engine.Weighted(1, 3)

	assert.Equal(t, before, n.Snapshot())
}

package diskplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name      string
		targetSub string
		targetRG  string
		expected  MigrationTarget
	}{
		{
			name:     "no overrides migrates in place",
			expected: MigrationTarget{SubscriptionID: "sub-a", ResourceGroupName: "rg-a"},
		},
		{
			name:      "target subscription only mirrors resource group name",
			targetSub: "sub-b",
			expected:  MigrationTarget{SubscriptionID: "sub-b", ResourceGroupName: "rg-a"},
		},
		{
			name:     "target resource group only stays in source subscription",
			targetRG: "rg-b",
			expected: MigrationTarget{SubscriptionID: "sub-a", ResourceGroupName: "rg-b"},
		},
		{
			name:      "both overrides",
			targetSub: "sub-b",
			targetRG:  "rg-b",
			expected:  MigrationTarget{SubscriptionID: "sub-b", ResourceGroupName: "rg-b"},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveTarget("sub-a", "rg-a", tc.targetSub, tc.targetRG)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestMigrationTarget_CrossSubscription(t *testing.T) {
	t.Parallel()

	same := ResolveTarget("sub-a", "rg-a", "", "")
	assert.False(t, same.CrossSubscription("sub-a"))

	cross := ResolveTarget("sub-a", "rg-a", "sub-b", "")
	assert.True(t, cross.CrossSubscription("sub-a"))
}

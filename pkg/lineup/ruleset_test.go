package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleSetGameTypeFlags(t *testing.T) {
	assert.True(t, RuleSet{GameType: GameTypeShowdown}.IsShowdown())
	assert.True(t, RuleSet{GameType: GameTypeSingle}.IsSingle())
	assert.True(t, RuleSet{GameType: GameTypeFlex3}.IsFlex3())
	assert.True(t, RuleSet{GameType: GameTypeFlexyFive}.IsFlexyFive())

	assert.True(t, RuleSet{GameType: GameTypeSingle}.UsesRowLevelIdentity())
	assert.True(t, RuleSet{GameType: GameTypeFlex3}.UsesRowLevelIdentity())
	assert.False(t, RuleSet{GameType: GameTypeClassic}.UsesRowLevelIdentity())
}

func TestRuleSetMaxPlayersPerTeam(t *testing.T) {
	min, max := RuleSet{GameType: GameTypeSingle}.MaxPlayersPerTeam()
	assert.Equal(t, 1, min)
	assert.Equal(t, 4, max)

	min, max = RuleSet{GameType: GameTypeFlex3}.MaxPlayersPerTeam()
	assert.Equal(t, 0, min)
	assert.Equal(t, 2, max)

	min, max = RuleSet{GameType: GameTypeClassic, Site: SiteDraftKings}.MaxPlayersPerTeam()
	assert.Equal(t, 0, min)
	assert.Equal(t, 7, max)

	min, max = RuleSet{GameType: GameTypeClassic, Site: SiteFanDuel}.MaxPlayersPerTeam()
	assert.Equal(t, 0, min)
	assert.Equal(t, 4, max)
}

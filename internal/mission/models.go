package mission

import "sectors-server/internal/archetype"

// Def is a generated bounty mission, derived solely from a system and an
// integer tier.
type Def struct {
	ID             string            `json:"id"`
	Seed           uint64            `json:"seed,string"`
	Tier           int               `json:"tier"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	TargetSystemID string            `json:"target_system_id"`
	Faction        archetype.Faction `json:"faction"`
	GoalKills      int               `json:"goal_kills"`
	RewardCredits  int               `json:"reward_credits"`
}

package mission

import (
	"fmt"
	"math"

	"sectors-server/internal/procgen"
	"sectors-server/internal/system"
)

const missionType = "bounty_hunt"

// Generate produces the bounty mission for a system at the given tier. The
// only random draw is the kill-goal jitter; reward computation is plain
// arithmetic on the already-drawn goal.
func Generate(sys system.Def, tier int) Def {
	seed := procgen.DeriveSeed(sys.Seed, "mission", tier)
	rng := procgen.NewStream(seed)

	baseKills := 6 + int(math.Round(sys.POIDensity*10))
	tierKills := int(math.Floor(float64(tier) * 1.25))
	jitter := int(math.Round(rng.Range(-2, 3)))
	goalKills := procgen.ClampInt(6, 36, baseKills+tierKills+jitter)

	perKill := 35 + int(math.Round(sys.Economy.Wealth*30))
	tierScalar := 1 + math.Min(0.6, float64(tier)*0.08)
	rewardCredits := int(math.Round(float64(goalKills) * float64(perKill) * tierScalar))
	if rewardCredits < 100 {
		rewardCredits = 100
	}

	return Def{
		ID:             fmt.Sprintf("%s_bounty_t%d", sys.ID, tier),
		Seed:           seed,
		Tier:           tier,
		Type:           missionType,
		Title:          fmt.Sprintf("Bounty: clear hostiles in %s", sys.ID),
		Description:    fmt.Sprintf("Pirate activity has spiked in %s. Destroy the marked fighters and collect the bounty.", sys.ID),
		TargetSystemID: sys.ID,
		Faction:        sys.Faction,
		GoalKills:      goalKills,
		RewardCredits:  rewardCredits,
	}
}

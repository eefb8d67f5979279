package picker

// SkillPolicy selects how PickSkill draws from the skill list
type SkillPolicy string

const (
	// SkillPolicyGrouped picks combat or other first, then a skill within
	// the group. Each combat skill comes up 1/14 of the time, each other
	// skill 1/32.
	SkillPolicyGrouped SkillPolicy = "grouped"

	// SkillPolicyFlat picks uniformly over all 23 skills
	SkillPolicyFlat SkillPolicy = "flat"
)

// SkillPolicies lists the accepted policy names
func SkillPolicies() []string {
	return []string{string(SkillPolicyGrouped), string(SkillPolicyFlat)}
}

// Event types published on the event bus
const (
	EventBossPicked  = "picker.boss_picked"
	EventSkillPicked = "picker.skill_picked"
)

// PickBossInput defines the request for a boss pick
type PickBossInput struct {
	// Exclusions are 1-based category indices or category names.
	// Tokens that do not resolve to a category are ignored.
	Exclusions []string
}

// PickBossOutput defines the result of a boss pick
type PickBossOutput struct {
	DrawID   string
	Category string
	Boss     string

	// Excluded holds the category names the exclusions resolved to
	Excluded []string
	// Candidates is how many categories were in the draw
	Candidates int
}

// PickSkillInput defines the request for a skill pick
type PickSkillInput struct{}

// PickSkillOutput defines the result of a skill pick
type PickSkillOutput struct {
	DrawID string
	Skill  string
	// Group is empty under SkillPolicyFlat
	Group string
}

// ListCategoriesInput defines the request for listing categories
type ListCategoriesInput struct{}

// CategoryListing is one numbered entry of the category menu
type CategoryListing struct {
	// Index is the 1-based position accepted as an exclusion token
	Index     int
	Name      string
	BossCount int
}

// ListCategoriesOutput defines the response for listing categories
type ListCategoriesOutput struct {
	Categories []CategoryListing
}

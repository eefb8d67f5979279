package osrs

// Boss category names
const (
	CategoryWorldBosses      = "World Bosses"
	CategoryGodWars          = "God Wars"
	CategoryWildernessBosses = "Wilderness Bosses"
	CategorySlayerOnlyBosses = "Slayer Only Bosses"
	CategoryMinigameBosses   = "Minigame Bosses"
	CategorySkillingBosses   = "Skilling Bosses"
	CategoryRaids            = "Raids"
)

// Skill group names
const (
	SkillGroupCombat = "Combat"
	SkillGroupOther  = "Other"
)

// Entity types reported through core.Entity
const (
	EntityTypeCategory = "boss_category"
	EntityTypeBoss     = "boss"
	EntityTypeSkill    = "skill"
)

var bossTable = []Category{
	{
		Name: CategoryWorldBosses,
		Bosses: []string{
			"Barrows", "Scurrius", "Giant Mole", "Deranged Archaeologist", "DKs", "Sarachnis",
			"Perilous Moons", "Kalphite Queen", "Corporeal Beast", "Zulrah", "Vorkath", "Phantom Muspah",
			"Nightmare", "Duke Sucellus", "The Leviathan", "The Whisperer", "Vardorvis", "Obor",
			"Bryophyta", "The Mimic", "Hespori", "Skotizo",
		},
	},
	{
		Name:   CategoryGodWars,
		Bosses: []string{"Kree'arra", "Zilyana", "Graador", "K'ril", "Nex"},
	},
	{
		Name: CategoryWildernessBosses,
		Bosses: []string{
			"Chaos Fanatic", "Crazy Archaeologist", "Scorpia", "King Black Dragon", "Calvar'ion",
			"Chaos Elemental", "Vet'ion", "Venenatis", "Callisto",
		},
	},
	{
		Name: CategorySlayerOnlyBosses,
		Bosses: []string{
			"Grotesque Guardians", "Abyssal Sire", "Kraken", "Cerberus", "Thermonuclear Smoke Devil",
			"Alchemical Hydra",
		},
	},
	{
		Name:   CategoryMinigameBosses,
		Bosses: []string{"Gauntlet", "TzTok-Jad", "TzKal-Zuk", "Sol Heredit"},
	},
	{
		Name:   CategorySkillingBosses,
		Bosses: []string{"Tempoross", "Wintertodt", "Zalcano"},
	},
	{
		Name:   CategoryRaids,
		Bosses: []string{"Chambers of Xeric", "Tombs of Amascut", "Theatre of Blood"},
	},
}

var combatSkills = []string{
	"Attack", "Strength", "Defence", "Ranged", "Prayer", "Magic", "Hitpoints",
}

var otherSkills = []string{
	"Runecraft", "Crafting", "Mining", "Smithing", "Fishing", "Cooking", "Firemaking",
	"Woodcutting", "Agility", "Herblore", "Thieving", "Fletching", "Slayer", "Farming",
	"Construction", "Hunter",
}

package schema

// Closed enum sets. Order matters: the asset resolver cycles through Frames and
// Portraits in this order, and index 0 is the standard asset.
var (
	Archetypes = []string{
		"sk_nord_mercenary",
		"sk_breton_spellblade",
		"sk_dunmer_outcast",
		"sk_khajiit_sneakthief",
		"sk_altmer_court_mage",
		"sk_orc_stronghold",
		"sk_argonian_marsh_scout",
		"sk_imperial_inquisitor",
		"sk_redguard_duelist",
		"sk_reach_witch",
	}

	Frames = []string{
		StandardFrame,
		"sk_altmer.png",
		"sk_argonian.png",
		"sk_bosmer.png",
		"sk_breton.png",
		"sk_dunmer.png",
		"sk_imperial.png",
		"sk_khajiit.png",
		"sk_nord.png",
		"sk_orc.png",
		"sk_redguard.png",
	}

	Portraits = []string{
		StandardPortrait,
		"sk_altmer.webp",
		"sk_argonian.webp",
		"sk_bosmer.webp",
		"sk_breton.webp",
		"sk_dunmer.webp",
		"sk_imperial.webp",
		"sk_khajiit.webp",
		"sk_nord.webp",
		"sk_orc.webp",
		"sk_redguard.webp",
	}
)

const (
	StandardFrame    = "sk_standard.png"
	StandardPortrait = "sk_standard.webp"
)

// Contains reports whether v is a member of the closed set.
func Contains(set []string, v string) bool {
	return IndexOf(set, v) >= 0
}

// IndexOf returns the position of v in set, or -1.
func IndexOf(set []string, v string) int {
	for i, s := range set {
		if s == v {
			return i
		}
	}
	return -1
}

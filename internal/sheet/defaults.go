package sheet

// DefaultPrompt seeds the prompt box before the first generation.
const DefaultPrompt = "A Redguard duelist seeking redemption after betraying his mentor; dark tone; with magic"

// ExamplePrompts are the starter prompts offered next to the prompt box.
var ExamplePrompts = []string{
	"A Nord warrior seeking glory in battle",
	"A cunning Khajiit thief with a heart of gold",
	"A Breton mage haunted by dark visions",
	"An Argonian ranger protecting the marsh",
	"A Dunmer exile seeking revenge",
}

// Default returns the placeholder sheet shown before anything has been generated.
// Each call returns a fresh copy.
func Default() Sheet {
	return Sheet{
		ArchetypeID: "sk_redguard_duelist",
		FrameID:     "sk_standard.png",
		PortraitID:  "sk_standard.webp",

		Name:    "Azhar al-Sahr",
		Epithet: "The Doubting Blade",
		Race:    "Redguard",
		Origin:  "The old sands of Sentinel",

		Hook: "He betrayed his mentor to live. Now he can't tell if redemption is earned or taken.",
		Backstory: "Azhar was raised under a master swordsman who preached discipline without mercy and honor without compromise. " +
			"In a rigged duel arranged by corrupt nobles, Azhar chose survival and left his mentor to die. " +
			"Since then he has drifted as a sellsword, nursing a forbidden gift for spellwork he refuses to trust.",
		History: "He will try to join the Companions to earn honor the hard way, then hunt the noble who rigged the duel.",

		Build: Build{
			Playstyle:  "Technical one-on-one fighting; backs the blade with controlled spellwork.",
			CombatRole: "Duelist",
			CoreSkills: []string{"One-Handed", "Block", "Light Armor"},
		},
		Stats: Stats{Might: 8, Guile: 6, Arcana: 1, Grit: 9, Presence: 5},

		Traits:  []string{"Unforgiving discipline", "Wounded pride", "Quiet under pressure"},
		Bond:    "A broken sword that once belonged to his mentor.",
		Nemesis: "The noble who paid for the rigged duel.",

		Allies:  []string{"Borderland sellswords", "Wandering Redguard warriors"},
		Enemies: []string{"Corrupt city nobles", "Fame-hungry duelists"},

		Flaw: "He mistakes penance for self-destruction.",
		Oath: "He will never claim a victory he did not earn.",

		SignatureItem: "A nicked Redguard saber with a black leather hilt",
		Quote:         "Steel remembers what men try to forget.",
	}
}

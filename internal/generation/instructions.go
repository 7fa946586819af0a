package generation

import (
	"strings"

	"github.com/cardforge/cardforge/internal/schema"
)

// UserPrefix is prepended to the player's request in the user message.
const UserPrefix = "Create one Skyrim character sheet from this user request:\n"

// Instructions are the fixed style rules sent with every request.
var Instructions = strings.TrimSpace(`
You are generating a Skyrim character sheet for a highly visual card UI.
Return ONLY JSON that matches the provided JSON Schema.

Style rules:
- Write ALL fields in English, even if the user input is not.
- Keep text punchy and card-friendly: short sentences, no long paragraphs.
- Avoid repeating the same concept across fields.
- Ensure internal coherence: allies/enemies fit the backstory; the oath must meaningfully relate to the flaw.
- Names must feel Elder Scrolls (no modern slang).
- Choose ONE archetype_id from this list: ` + strings.Join(schema.Archetypes, ", ") + `.
- Choose ONE frame_id from this list, matching the race when possible: ` + strings.Join(schema.Frames, ", ") + `.
- Choose ONE portrait_id from this list, matching the race when possible: ` + strings.Join(schema.Portraits, ", ") + `.

Content guidance:
- hook: 1-2 lines, immediate premise.
- backstory: 3-6 sentences max.
- history: a few key events, in order.
- traits: 3 distinct, non-overlapping.
- bond/nemesis: specific, flavorful, not generic.
- stats: at least one weakness (<=4) and one strength (>=8).
`)

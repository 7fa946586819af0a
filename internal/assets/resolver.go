// Package assets maps a sheet's semantic fields to visual asset ids. Every
// function here is pure and only ever returns members of the schema's closed sets.
package assets

import (
	"strings"

	"github.com/cardforge/cardforge/internal/schema"
	"github.com/cardforge/cardforge/internal/sheet"
)

// raceKeys maps normalized race strings (and common aliases) to the asset stem
// used in frame and portrait ids.
var raceKeys = map[string]string{
	"altmer":     "altmer",
	"high elf":   "altmer",
	"argonian":   "argonian",
	"bosmer":     "bosmer",
	"wood elf":   "bosmer",
	"breton":     "breton",
	"dunmer":     "dunmer",
	"dark elf":   "dunmer",
	"imperial":   "imperial",
	"khajiit":    "khajiit",
	"nord":       "nord",
	"orc":        "orc",
	"orsimer":    "orc",
	"redguard":   "redguard",
	"reachman":   "breton",
	"forsworn":   "breton",
	"cyrodiilic": "imperial",
}

func normalize(race string) string {
	r := strings.ToLower(strings.TrimSpace(race))
	r = strings.ReplaceAll(r, "-", " ")
	return strings.Join(strings.Fields(r), " ")
}

func lookup(race string, set []string, ext, standard string) string {
	stem, ok := raceKeys[normalize(race)]
	if !ok {
		return standard
	}
	id := "sk_" + stem + ext
	if !schema.Contains(set, id) {
		return standard
	}
	return id
}

// FrameFor returns the frame mapped to race, or the standard frame.
func FrameFor(race string) string {
	return lookup(race, schema.Frames, ".png", schema.StandardFrame)
}

// PortraitFor returns the portrait mapped to race, or the standard portrait.
func PortraitFor(race string) string {
	return lookup(race, schema.Portraits, ".webp", schema.StandardPortrait)
}

// Complete fills frame_id and portrait_id on a raw candidate when the provider left
// them absent or empty. Ids the provider did supply are kept as-is; the validator
// decides whether they belong to the closed sets.
func Complete(candidate map[string]any) {
	if candidate == nil {
		return
	}
	race, _ := candidate["race"].(string)
	if blank(candidate["frame_id"]) {
		candidate["frame_id"] = FrameFor(race)
	}
	if blank(candidate["portrait_id"]) {
		candidate["portrait_id"] = PortraitFor(race)
	}
}

func blank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Next returns the id after current in set, wrapping at the end. An id that is
// not in set restarts the cycle at index 0.
func Next(set []string, current string) string {
	i := schema.IndexOf(set, current)
	if i < 0 {
		return set[0]
	}
	return set[(i+1)%len(set)]
}

// Shuffle advances the frame and the portrait one position each, independently.
// The text of the sheet is untouched.
func Shuffle(s sheet.Sheet) sheet.Sheet {
	s.FrameID = Next(schema.Frames, s.FrameID)
	s.PortraitID = Next(schema.Portraits, s.PortraitID)
	return s
}

package sheet

// Sheet is the structured character record produced by generation and consumed by
// the card renderer. JSON keys follow the wire format the renderer reads.
type Sheet struct {
	ArchetypeID string `json:"archetype_id"`
	FrameID     string `json:"frame_id"`
	PortraitID  string `json:"portrait_id"`

	Name    string `json:"name"`
	Epithet string `json:"epithet"`
	Race    string `json:"race"`
	Origin  string `json:"origin"`

	Hook      string `json:"hook"`
	Backstory string `json:"backstory"`
	History   string `json:"history"`

	Build Build `json:"build"`
	Stats Stats `json:"stats"`

	Traits  []string `json:"traits"`
	Bond    string   `json:"bond"`
	Nemesis string   `json:"nemesis"`

	Allies  []string `json:"allies"`
	Enemies []string `json:"enemies"`

	Flaw string `json:"flaw"`
	Oath string `json:"oath"`

	SignatureItem string `json:"signature_item"`
	Quote         string `json:"quote"`
}

type Build struct {
	Playstyle  string   `json:"playstyle"`
	CombatRole string   `json:"combat_role"`
	CoreSkills []string `json:"core_skills"`
}

type Stats struct {
	Might    int `json:"might"`
	Guile    int `json:"guile"`
	Arcana   int `json:"arcana"`
	Grit     int `json:"grit"`
	Presence int `json:"presence"`
}

// SharedCard is the persisted envelope addressed by a share id. CreatedAt is
// milliseconds since the Unix epoch. A SharedCard is never updated once stored.
type SharedCard struct {
	Sheet     Sheet  `json:"sheet"`
	Prompt    string `json:"prompt,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Clone returns a deep copy so stored cards cannot be changed through a caller's
// slices.
func (c SharedCard) Clone() SharedCard {
	c.Sheet = c.Sheet.Clone()
	return c
}

// Clone returns a deep copy of the sheet.
func (s Sheet) Clone() Sheet {
	s.Build.CoreSkills = cloneStrings(s.Build.CoreSkills)
	s.Traits = cloneStrings(s.Traits)
	s.Allies = cloneStrings(s.Allies)
	s.Enemies = cloneStrings(s.Enemies)
	return s
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

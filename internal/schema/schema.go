// Package schema is the single definition of a character sheet's shape. The same
// definition is sent to the generation provider as a structured-output constraint
// and walked by the validator, so the two cannot drift.
package schema

import "encoding/json"

// Name identifies the schema in provider requests.
const Name = "skyrim_character_sheet_v2"

// Schema is the JSON Schema subset needed to describe a sheet.
type Schema struct {
	Type                 string             `json:"type"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	Enum                 []string           `json:"enum,omitempty"`
	MinLength            *int               `json:"minLength,omitempty"`
	MaxLength            *int               `json:"maxLength,omitempty"`
	MinItems             *int               `json:"minItems,omitempty"`
	MaxItems             *int               `json:"maxItems,omitempty"`
	Minimum              *int               `json:"minimum,omitempty"`
	Maximum              *int               `json:"maximum,omitempty"`

	// UniqueItems is enforced by the validator only; strict structured output
	// rejects the keyword, so it is never serialized.
	UniqueItems bool `json:"-"`
}

type field struct {
	name   string
	schema *Schema
}

func intp(v int) *int { return &v }

// object builds a closed object whose properties are all required, in the
// declared order.
func object(fields ...field) *Schema {
	closed := false
	s := &Schema{
		Type:                 "object",
		Properties:           make(map[string]*Schema, len(fields)),
		Required:             make([]string, 0, len(fields)),
		AdditionalProperties: &closed,
	}
	for _, f := range fields {
		s.Properties[f.name] = f.schema
		s.Required = append(s.Required, f.name)
	}
	return s
}

func text(min, max int) *Schema {
	s := &Schema{Type: "string", MaxLength: intp(max)}
	if min > 0 {
		s.MinLength = intp(min)
	}
	return s
}

func list(item *Schema, min, max int) *Schema {
	return &Schema{Type: "array", Items: item, MinItems: intp(min), MaxItems: intp(max)}
}

func integer(min, max int) *Schema {
	return &Schema{Type: "integer", Minimum: intp(min), Maximum: intp(max)}
}

func enum(values []string) *Schema {
	return &Schema{Type: "string", Enum: append([]string(nil), values...)}
}

// Sheet returns the canonical sheet schema. Every call builds a fresh value.
func Sheet() *Schema {
	traits := list(text(0, 28), 3, 3)
	traits.UniqueItems = true

	return object(
		field{"archetype_id", enum(Archetypes)},
		field{"frame_id", enum(Frames)},
		field{"portrait_id", enum(Portraits)},

		field{"name", text(2, 24)},
		field{"epithet", text(2, 32)},
		field{"race", text(0, 20)},
		field{"origin", text(0, 42)},

		field{"hook", text(10, 140)},
		field{"backstory", text(80, 420)},
		field{"history", text(20, 160)},

		field{"build", object(
			field{"playstyle", text(0, 90)},
			field{"combat_role", text(0, 36)},
			field{"core_skills", list(text(0, 20), 3, 3)},
		)},
		field{"stats", object(
			field{"might", integer(1, 10)},
			field{"guile", integer(1, 10)},
			field{"arcana", integer(1, 10)},
			field{"grit", integer(1, 10)},
			field{"presence", integer(1, 10)},
		)},

		field{"traits", traits},
		field{"bond", text(0, 70)},
		field{"nemesis", text(0, 70)},

		field{"allies", list(text(0, 42), 2, 4)},
		field{"enemies", list(text(0, 42), 2, 4)},

		field{"flaw", text(0, 90)},
		field{"oath", text(0, 90)},

		field{"signature_item", text(0, 60)},
		field{"quote", text(0, 110)},
	)
}

// JSON renders the sheet schema for a structured-output request.
func JSON() (json.RawMessage, error) {
	b, err := json.Marshal(Sheet())
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import "github.com/tidwall/gjson"

// Composition object kinds. Text objects carry their kind on the wire
// as "type"; the others are identified by position and shape.
const (
	TextTypePlain              = "plain_text"
	TextTypeMarkdown           = "mrkdwn"
	CompositionTypeConfirm     = "confirm"
	CompositionTypeOption      = "option"
	CompositionTypeOptionGroup = "option_group"
)

// Composition is a small value type embedded in blocks and elements:
// *TextObject, *ConfirmObject, *OptionObject, *OptionGroupObject, or
// *UnknownComposition.
type Composition interface {
	CompositionType() string
	isComposition()
}

// TextObject is a plain_text or mrkdwn text object.
type TextObject struct {
	// Type is TextTypePlain or TextTypeMarkdown.
	Type string `json:"type"`
	Text string `json:"text"`

	// Emoji applies to plain_text only.
	Emoji *bool `json:"emoji,omitempty"`

	// Verbatim applies to mrkdwn only.
	Verbatim *bool `json:"verbatim,omitempty"`
}

// NewPlainText returns a plain_text object.
func NewPlainText(text string) *TextObject {
	return &TextObject{Type: TextTypePlain, Text: text}
}

// NewMarkdown returns an mrkdwn text object.
func NewMarkdown(text string) *TextObject {
	return &TextObject{Type: TextTypeMarkdown, Text: text}
}

func (t *TextObject) CompositionType() string { return t.Type }
func (*TextObject) isComposition()            {}
func (*TextObject) isContextElement()         {}

// UnmarshalJSON requires "type" to be one of the two text kinds and
// "text" to be present.
func (t *TextObject) UnmarshalJSON(data []byte) error {
	type wire TextObject
	variant := ""
	if object := gjson.ParseBytes(data); gjson.ValidBytes(data) && object.IsObject() {
		value := object.Get(discriminatorField)
		switch {
		case !value.Exists() || value.Type == gjson.Null:
			return &DecodeError{Kind: MissingDiscriminator, Family: FamilyComposition}
		case value.Str != TextTypePlain && value.Str != TextTypeMarkdown:
			return &DecodeError{Kind: MalformedField, Family: FamilyComposition, Variant: value.String(), Field: discriminatorField}
		}
		variant = value.Str
	}
	return decodeFields(FamilyComposition, variant, data, (*wire)(t), requires("text"))
}

// ConfirmObject is a confirmation dialog attached to an interactive
// element.
type ConfirmObject struct {
	Title   *TextObject `json:"title"`
	Text    *TextObject `json:"text"`
	Confirm *TextObject `json:"confirm"`
	Deny    *TextObject `json:"deny"`

	// Style is "primary" or "danger"; empty uses the default.
	Style string `json:"style,omitempty"`
}

func (*ConfirmObject) CompositionType() string { return CompositionTypeConfirm }
func (*ConfirmObject) isComposition()          {}

func (c *ConfirmObject) UnmarshalJSON(data []byte) error {
	type wire ConfirmObject
	return decodeFields(FamilyComposition, CompositionTypeConfirm, data, (*wire)(c),
		requires("title", "text", "confirm", "deny"))
}

// OptionObject is one choice in a select menu, overflow menu,
// checkbox group, or radio button group.
type OptionObject struct {
	Text *TextObject `json:"text"`

	// Value is required unless URL is set.
	Value       string      `json:"value,omitempty"`
	Description *TextObject `json:"description,omitempty"`

	// URL is only honored inside overflow menus.
	URL string `json:"url,omitempty"`
}

// NewOption returns a plain_text option.
func NewOption(text, value string) *OptionObject {
	return &OptionObject{Text: NewPlainText(text), Value: value}
}

func (*OptionObject) CompositionType() string { return CompositionTypeOption }
func (*OptionObject) isComposition()          {}

// optionSchema matches the structural recognition in DecodeComposition,
// so any option that decodes inside a menu also decodes standalone.
var optionSchema = schema{required: []string{"text"}, atLeastOne: []string{"value", "url"}}

func (o *OptionObject) UnmarshalJSON(data []byte) error {
	type wire OptionObject
	return decodeFields(FamilyComposition, CompositionTypeOption, data, (*wire)(o), optionSchema)
}

// OptionGroupObject groups options under a label in a static select.
type OptionGroupObject struct {
	Label   *TextObject     `json:"label"`
	Options []*OptionObject `json:"options"`
}

func (*OptionGroupObject) CompositionType() string { return CompositionTypeOptionGroup }
func (*OptionGroupObject) isComposition()          {}

func (g *OptionGroupObject) UnmarshalJSON(data []byte) error {
	type wire OptionGroupObject
	return decodeFields(FamilyComposition, CompositionTypeOptionGroup, data, (*wire)(g), requires("label", "options"))
}

// Bool returns a pointer to v, for the tri-state flags on text objects.
func Bool(v bool) *bool { return &v }

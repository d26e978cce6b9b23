// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Element discriminators.
const (
	ElementTypeButton                   = "button"
	ElementTypeStaticSelect             = "static_select"
	ElementTypeExternalSelect           = "external_select"
	ElementTypeUsersSelect              = "users_select"
	ElementTypeConversationsSelect      = "conversations_select"
	ElementTypeChannelsSelect           = "channels_select"
	ElementTypeMultiStaticSelect        = "multi_static_select"
	ElementTypeMultiExternalSelect      = "multi_external_select"
	ElementTypeMultiUsersSelect         = "multi_users_select"
	ElementTypeMultiConversationsSelect = "multi_conversations_select"
	ElementTypeMultiChannelsSelect      = "multi_channels_select"
	ElementTypeOverflow                 = "overflow"
	ElementTypeDatePicker               = "datepicker"
	ElementTypeCheckboxes               = "checkboxes"
	ElementTypeRadioButtons             = "radio_buttons"
	ElementTypePlainTextInput           = "plain_text_input"
	ElementTypeImage                    = "image"
)

// Element is an interactive or display component nested in a section
// accessory, an actions block, an input block, or a context block.
type Element interface {
	ElementType() string
	isElement()
}

// ContextElement is a member of a context block: an *ImageElement, a
// *TextObject, or an *UnknownElement.
type ContextElement interface {
	isContextElement()
}

var elementVariants = map[string]func() Element{
	ElementTypeButton:                   func() Element { return new(ButtonElement) },
	ElementTypeStaticSelect:             func() Element { return new(StaticSelectElement) },
	ElementTypeExternalSelect:           func() Element { return new(ExternalSelectElement) },
	ElementTypeUsersSelect:              func() Element { return new(UsersSelectElement) },
	ElementTypeConversationsSelect:      func() Element { return new(ConversationsSelectElement) },
	ElementTypeChannelsSelect:           func() Element { return new(ChannelsSelectElement) },
	ElementTypeMultiStaticSelect:        func() Element { return new(MultiStaticSelectElement) },
	ElementTypeMultiExternalSelect:      func() Element { return new(MultiExternalSelectElement) },
	ElementTypeMultiUsersSelect:         func() Element { return new(MultiUsersSelectElement) },
	ElementTypeMultiConversationsSelect: func() Element { return new(MultiConversationsSelectElement) },
	ElementTypeMultiChannelsSelect:      func() Element { return new(MultiChannelsSelectElement) },
	ElementTypeOverflow:                 func() Element { return new(OverflowElement) },
	ElementTypeDatePicker:               func() Element { return new(DatePickerElement) },
	ElementTypeCheckboxes:               func() Element { return new(CheckboxesElement) },
	ElementTypeRadioButtons:             func() Element { return new(RadioButtonsElement) },
	ElementTypePlainTextInput:           func() Element { return new(PlainTextInputElement) },
	ElementTypeImage:                    func() Element { return new(ImageElement) },
}

// Elements is an ordered list of elements that decodes each item
// through [DecodeElement].
type Elements []Element

func (elements *Elements) UnmarshalJSON(data []byte) error {
	decoded, err := decodeList(data, DecodeElement)
	if err != nil {
		return err
	}
	*elements = decoded
	return nil
}

// ContextElements is the element list of a context block. Text objects
// are recognized by their type; everything else goes through
// [DecodeElement] and must be an image or an unknown element.
type ContextElements []ContextElement

func (elements *ContextElements) UnmarshalJSON(data []byte) error {
	decoded, err := decodeList(data, decodeContextElement)
	if err != nil {
		return err
	}
	*elements = decoded
	return nil
}

func decodeContextElement(data []byte) (ContextElement, error) {
	switch gjson.GetBytes(data, discriminatorField).String() {
	case TextTypePlain, TextTypeMarkdown:
		text := new(TextObject)
		if err := json.Unmarshal(data, text); err != nil {
			return nil, fieldError(FamilyComposition, "text", err)
		}
		return text, nil
	}
	element, err := DecodeElement(data)
	if err != nil {
		return nil, err
	}
	contextElement, ok := element.(ContextElement)
	if !ok {
		return nil, &DecodeError{Kind: MalformedField, Family: FamilyBlock, Variant: BlockTypeContext, Field: "elements"}
	}
	return contextElement, nil
}

// ButtonElement is a clickable button.
type ButtonElement struct {
	Text     *TextObject `json:"text"`
	ActionID string      `json:"action_id,omitempty"`
	URL      string      `json:"url,omitempty"`
	Value    string      `json:"value,omitempty"`

	// Style is "primary" or "danger"; empty uses the default.
	Style              string         `json:"style,omitempty"`
	Confirm            *ConfirmObject `json:"confirm,omitempty"`
	AccessibilityLabel string         `json:"accessibility_label,omitempty"`
}

func (*ButtonElement) ElementType() string { return ElementTypeButton }
func (*ButtonElement) isElement()          {}

func (e ButtonElement) MarshalJSON() ([]byte, error) {
	type wire ButtonElement
	return marshalTagged(ElementTypeButton, wire(e))
}

func (e *ButtonElement) UnmarshalJSON(data []byte) error {
	type wire ButtonElement
	return decodeFields(FamilyElement, ElementTypeButton, data, (*wire)(e), requires("text"))
}

// StaticSelectElement is a select menu over a fixed list of options or
// option groups, never both.
type StaticSelectElement struct {
	Placeholder   *TextObject          `json:"placeholder,omitempty"`
	ActionID      string               `json:"action_id,omitempty"`
	Options       []*OptionObject      `json:"options,omitempty"`
	OptionGroups  []*OptionGroupObject `json:"option_groups,omitempty"`
	InitialOption *OptionObject        `json:"initial_option,omitempty"`
	Confirm       *ConfirmObject       `json:"confirm,omitempty"`
	FocusOnLoad   bool                 `json:"focus_on_load,omitempty"`
}

func (*StaticSelectElement) ElementType() string { return ElementTypeStaticSelect }
func (*StaticSelectElement) isElement()          {}

func (e StaticSelectElement) MarshalJSON() ([]byte, error) {
	type wire StaticSelectElement
	return marshalTagged(ElementTypeStaticSelect, wire(e))
}

func (e *StaticSelectElement) UnmarshalJSON(data []byte) error {
	type wire StaticSelectElement
	return decodeFields(FamilyElement, ElementTypeStaticSelect, data, (*wire)(e), optionsOrGroups)
}

var optionsOrGroups = schema{exactlyOne: []string{"options", "option_groups"}}

// ExternalSelectElement loads its options from the app's options
// load URL.
type ExternalSelectElement struct {
	Placeholder    *TextObject    `json:"placeholder,omitempty"`
	ActionID       string         `json:"action_id,omitempty"`
	InitialOption  *OptionObject  `json:"initial_option,omitempty"`
	MinQueryLength *int           `json:"min_query_length,omitempty"`
	Confirm        *ConfirmObject `json:"confirm,omitempty"`
	FocusOnLoad    bool           `json:"focus_on_load,omitempty"`
}

func (*ExternalSelectElement) ElementType() string { return ElementTypeExternalSelect }
func (*ExternalSelectElement) isElement()          {}

func (e ExternalSelectElement) MarshalJSON() ([]byte, error) {
	type wire ExternalSelectElement
	return marshalTagged(ElementTypeExternalSelect, wire(e))
}

func (e *ExternalSelectElement) UnmarshalJSON(data []byte) error {
	type wire ExternalSelectElement
	return decodeFields(FamilyElement, ElementTypeExternalSelect, data, (*wire)(e), schema{})
}

// UsersSelectElement lists workspace users.
type UsersSelectElement struct {
	Placeholder *TextObject    `json:"placeholder,omitempty"`
	ActionID    string         `json:"action_id,omitempty"`
	InitialUser string         `json:"initial_user,omitempty"`
	Confirm     *ConfirmObject `json:"confirm,omitempty"`
	FocusOnLoad bool           `json:"focus_on_load,omitempty"`
}

func (*UsersSelectElement) ElementType() string { return ElementTypeUsersSelect }
func (*UsersSelectElement) isElement()          {}

func (e UsersSelectElement) MarshalJSON() ([]byte, error) {
	type wire UsersSelectElement
	return marshalTagged(ElementTypeUsersSelect, wire(e))
}

func (e *UsersSelectElement) UnmarshalJSON(data []byte) error {
	type wire UsersSelectElement
	return decodeFields(FamilyElement, ElementTypeUsersSelect, data, (*wire)(e), schema{})
}

// ConversationFilter narrows the list shown by a conversations select.
type ConversationFilter struct {
	// Include holds any of "im", "mpim", "private", "public".
	Include                       []string `json:"include,omitempty"`
	ExcludeExternalSharedChannels bool     `json:"exclude_external_shared_channels,omitempty"`
	ExcludeBotUsers               bool     `json:"exclude_bot_users,omitempty"`
}

// ConversationsSelectElement lists conversations visible to the user.
type ConversationsSelectElement struct {
	Placeholder                  *TextObject         `json:"placeholder,omitempty"`
	ActionID                     string              `json:"action_id,omitempty"`
	InitialConversation          string              `json:"initial_conversation,omitempty"`
	DefaultToCurrentConversation bool                `json:"default_to_current_conversation,omitempty"`
	ResponseURLEnabled           bool                `json:"response_url_enabled,omitempty"`
	Filter                       *ConversationFilter `json:"filter,omitempty"`
	Confirm                      *ConfirmObject      `json:"confirm,omitempty"`
	FocusOnLoad                  bool                `json:"focus_on_load,omitempty"`
}

func (*ConversationsSelectElement) ElementType() string { return ElementTypeConversationsSelect }
func (*ConversationsSelectElement) isElement()          {}

func (e ConversationsSelectElement) MarshalJSON() ([]byte, error) {
	type wire ConversationsSelectElement
	return marshalTagged(ElementTypeConversationsSelect, wire(e))
}

func (e *ConversationsSelectElement) UnmarshalJSON(data []byte) error {
	type wire ConversationsSelectElement
	return decodeFields(FamilyElement, ElementTypeConversationsSelect, data, (*wire)(e), schema{})
}

// ChannelsSelectElement lists public channels.
type ChannelsSelectElement struct {
	Placeholder        *TextObject    `json:"placeholder,omitempty"`
	ActionID           string         `json:"action_id,omitempty"`
	InitialChannel     string         `json:"initial_channel,omitempty"`
	ResponseURLEnabled bool           `json:"response_url_enabled,omitempty"`
	Confirm            *ConfirmObject `json:"confirm,omitempty"`
	FocusOnLoad        bool           `json:"focus_on_load,omitempty"`
}

func (*ChannelsSelectElement) ElementType() string { return ElementTypeChannelsSelect }
func (*ChannelsSelectElement) isElement()          {}

func (e ChannelsSelectElement) MarshalJSON() ([]byte, error) {
	type wire ChannelsSelectElement
	return marshalTagged(ElementTypeChannelsSelect, wire(e))
}

func (e *ChannelsSelectElement) UnmarshalJSON(data []byte) error {
	type wire ChannelsSelectElement
	return decodeFields(FamilyElement, ElementTypeChannelsSelect, data, (*wire)(e), schema{})
}

// MultiStaticSelectElement is the multi-select form of
// StaticSelectElement.
type MultiStaticSelectElement struct {
	Placeholder      *TextObject          `json:"placeholder,omitempty"`
	ActionID         string               `json:"action_id,omitempty"`
	Options          []*OptionObject      `json:"options,omitempty"`
	OptionGroups     []*OptionGroupObject `json:"option_groups,omitempty"`
	InitialOptions   []*OptionObject      `json:"initial_options,omitempty"`
	Confirm          *ConfirmObject       `json:"confirm,omitempty"`
	MaxSelectedItems int                  `json:"max_selected_items,omitempty"`
	FocusOnLoad      bool                 `json:"focus_on_load,omitempty"`
}

func (*MultiStaticSelectElement) ElementType() string { return ElementTypeMultiStaticSelect }
func (*MultiStaticSelectElement) isElement()          {}

func (e MultiStaticSelectElement) MarshalJSON() ([]byte, error) {
	type wire MultiStaticSelectElement
	return marshalTagged(ElementTypeMultiStaticSelect, wire(e))
}

func (e *MultiStaticSelectElement) UnmarshalJSON(data []byte) error {
	type wire MultiStaticSelectElement
	return decodeFields(FamilyElement, ElementTypeMultiStaticSelect, data, (*wire)(e), optionsOrGroups)
}

// MultiExternalSelectElement is the multi-select form of
// ExternalSelectElement.
type MultiExternalSelectElement struct {
	Placeholder      *TextObject     `json:"placeholder,omitempty"`
	ActionID         string          `json:"action_id,omitempty"`
	InitialOptions   []*OptionObject `json:"initial_options,omitempty"`
	MinQueryLength   *int            `json:"min_query_length,omitempty"`
	Confirm          *ConfirmObject  `json:"confirm,omitempty"`
	MaxSelectedItems int             `json:"max_selected_items,omitempty"`
	FocusOnLoad      bool            `json:"focus_on_load,omitempty"`
}

func (*MultiExternalSelectElement) ElementType() string { return ElementTypeMultiExternalSelect }
func (*MultiExternalSelectElement) isElement()          {}

func (e MultiExternalSelectElement) MarshalJSON() ([]byte, error) {
	type wire MultiExternalSelectElement
	return marshalTagged(ElementTypeMultiExternalSelect, wire(e))
}

func (e *MultiExternalSelectElement) UnmarshalJSON(data []byte) error {
	type wire MultiExternalSelectElement
	return decodeFields(FamilyElement, ElementTypeMultiExternalSelect, data, (*wire)(e), schema{})
}

// MultiUsersSelectElement is the multi-select form of
// UsersSelectElement.
type MultiUsersSelectElement struct {
	Placeholder      *TextObject    `json:"placeholder,omitempty"`
	ActionID         string         `json:"action_id,omitempty"`
	InitialUsers     []string       `json:"initial_users,omitempty"`
	Confirm          *ConfirmObject `json:"confirm,omitempty"`
	MaxSelectedItems int            `json:"max_selected_items,omitempty"`
	FocusOnLoad      bool           `json:"focus_on_load,omitempty"`
}

func (*MultiUsersSelectElement) ElementType() string { return ElementTypeMultiUsersSelect }
func (*MultiUsersSelectElement) isElement()          {}

func (e MultiUsersSelectElement) MarshalJSON() ([]byte, error) {
	type wire MultiUsersSelectElement
	return marshalTagged(ElementTypeMultiUsersSelect, wire(e))
}

func (e *MultiUsersSelectElement) UnmarshalJSON(data []byte) error {
	type wire MultiUsersSelectElement
	return decodeFields(FamilyElement, ElementTypeMultiUsersSelect, data, (*wire)(e), schema{})
}

// MultiConversationsSelectElement is the multi-select form of
// ConversationsSelectElement.
type MultiConversationsSelectElement struct {
	Placeholder                  *TextObject         `json:"placeholder,omitempty"`
	ActionID                     string              `json:"action_id,omitempty"`
	InitialConversations         []string            `json:"initial_conversations,omitempty"`
	DefaultToCurrentConversation bool                `json:"default_to_current_conversation,omitempty"`
	Filter                       *ConversationFilter `json:"filter,omitempty"`
	Confirm                      *ConfirmObject      `json:"confirm,omitempty"`
	MaxSelectedItems             int                 `json:"max_selected_items,omitempty"`
	FocusOnLoad                  bool                `json:"focus_on_load,omitempty"`
}

func (*MultiConversationsSelectElement) ElementType() string {
	return ElementTypeMultiConversationsSelect
}
func (*MultiConversationsSelectElement) isElement() {}

func (e MultiConversationsSelectElement) MarshalJSON() ([]byte, error) {
	type wire MultiConversationsSelectElement
	return marshalTagged(ElementTypeMultiConversationsSelect, wire(e))
}

func (e *MultiConversationsSelectElement) UnmarshalJSON(data []byte) error {
	type wire MultiConversationsSelectElement
	return decodeFields(FamilyElement, ElementTypeMultiConversationsSelect, data, (*wire)(e), schema{})
}

// MultiChannelsSelectElement is the multi-select form of
// ChannelsSelectElement.
type MultiChannelsSelectElement struct {
	Placeholder      *TextObject    `json:"placeholder,omitempty"`
	ActionID         string         `json:"action_id,omitempty"`
	InitialChannels  []string       `json:"initial_channels,omitempty"`
	Confirm          *ConfirmObject `json:"confirm,omitempty"`
	MaxSelectedItems int            `json:"max_selected_items,omitempty"`
	FocusOnLoad      bool           `json:"focus_on_load,omitempty"`
}

func (*MultiChannelsSelectElement) ElementType() string { return ElementTypeMultiChannelsSelect }
func (*MultiChannelsSelectElement) isElement()          {}

func (e MultiChannelsSelectElement) MarshalJSON() ([]byte, error) {
	type wire MultiChannelsSelectElement
	return marshalTagged(ElementTypeMultiChannelsSelect, wire(e))
}

func (e *MultiChannelsSelectElement) UnmarshalJSON(data []byte) error {
	type wire MultiChannelsSelectElement
	return decodeFields(FamilyElement, ElementTypeMultiChannelsSelect, data, (*wire)(e), schema{})
}

// OverflowElement is a compact "..." menu of options, which may carry
// URLs.
type OverflowElement struct {
	ActionID string          `json:"action_id,omitempty"`
	Options  []*OptionObject `json:"options"`
	Confirm  *ConfirmObject  `json:"confirm,omitempty"`
}

func (*OverflowElement) ElementType() string { return ElementTypeOverflow }
func (*OverflowElement) isElement()          {}

func (e OverflowElement) MarshalJSON() ([]byte, error) {
	type wire OverflowElement
	return marshalTagged(ElementTypeOverflow, wire(e))
}

func (e *OverflowElement) UnmarshalJSON(data []byte) error {
	type wire OverflowElement
	return decodeFields(FamilyElement, ElementTypeOverflow, data, (*wire)(e), requires("options"))
}

// DatePickerElement is a calendar picker. InitialDate is YYYY-MM-DD.
type DatePickerElement struct {
	ActionID    string         `json:"action_id,omitempty"`
	Placeholder *TextObject    `json:"placeholder,omitempty"`
	InitialDate string         `json:"initial_date,omitempty"`
	Confirm     *ConfirmObject `json:"confirm,omitempty"`
	FocusOnLoad bool           `json:"focus_on_load,omitempty"`
}

func (*DatePickerElement) ElementType() string { return ElementTypeDatePicker }
func (*DatePickerElement) isElement()          {}

func (e DatePickerElement) MarshalJSON() ([]byte, error) {
	type wire DatePickerElement
	return marshalTagged(ElementTypeDatePicker, wire(e))
}

func (e *DatePickerElement) UnmarshalJSON(data []byte) error {
	type wire DatePickerElement
	return decodeFields(FamilyElement, ElementTypeDatePicker, data, (*wire)(e), schema{})
}

// CheckboxesElement is a group of checkboxes.
type CheckboxesElement struct {
	ActionID       string          `json:"action_id,omitempty"`
	Options        []*OptionObject `json:"options"`
	InitialOptions []*OptionObject `json:"initial_options,omitempty"`
	Confirm        *ConfirmObject  `json:"confirm,omitempty"`
	FocusOnLoad    bool            `json:"focus_on_load,omitempty"`
}

func (*CheckboxesElement) ElementType() string { return ElementTypeCheckboxes }
func (*CheckboxesElement) isElement()          {}

func (e CheckboxesElement) MarshalJSON() ([]byte, error) {
	type wire CheckboxesElement
	return marshalTagged(ElementTypeCheckboxes, wire(e))
}

func (e *CheckboxesElement) UnmarshalJSON(data []byte) error {
	type wire CheckboxesElement
	return decodeFields(FamilyElement, ElementTypeCheckboxes, data, (*wire)(e), requires("options"))
}

// RadioButtonsElement is a group of mutually exclusive choices.
type RadioButtonsElement struct {
	ActionID      string          `json:"action_id,omitempty"`
	Options       []*OptionObject `json:"options"`
	InitialOption *OptionObject   `json:"initial_option,omitempty"`
	Confirm       *ConfirmObject  `json:"confirm,omitempty"`
	FocusOnLoad   bool            `json:"focus_on_load,omitempty"`
}

func (*RadioButtonsElement) ElementType() string { return ElementTypeRadioButtons }
func (*RadioButtonsElement) isElement()          {}

func (e RadioButtonsElement) MarshalJSON() ([]byte, error) {
	type wire RadioButtonsElement
	return marshalTagged(ElementTypeRadioButtons, wire(e))
}

func (e *RadioButtonsElement) UnmarshalJSON(data []byte) error {
	type wire RadioButtonsElement
	return decodeFields(FamilyElement, ElementTypeRadioButtons, data, (*wire)(e), requires("options"))
}

// DispatchActionConfig selects when a plain text input dispatches a
// block_actions payload.
type DispatchActionConfig struct {
	// TriggerActionsOn holds "on_enter_pressed" and/or
	// "on_character_entered".
	TriggerActionsOn []string `json:"trigger_actions_on,omitempty"`
}

// PlainTextInputElement is a free-form text field.
type PlainTextInputElement struct {
	ActionID             string                `json:"action_id,omitempty"`
	Placeholder          *TextObject           `json:"placeholder,omitempty"`
	InitialValue         string                `json:"initial_value,omitempty"`
	Multiline            bool                  `json:"multiline,omitempty"`
	MinLength            *int                  `json:"min_length,omitempty"`
	MaxLength            *int                  `json:"max_length,omitempty"`
	DispatchActionConfig *DispatchActionConfig `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          bool                  `json:"focus_on_load,omitempty"`
}

func (*PlainTextInputElement) ElementType() string { return ElementTypePlainTextInput }
func (*PlainTextInputElement) isElement()          {}

func (e PlainTextInputElement) MarshalJSON() ([]byte, error) {
	type wire PlainTextInputElement
	return marshalTagged(ElementTypePlainTextInput, wire(e))
}

func (e *PlainTextInputElement) UnmarshalJSON(data []byte) error {
	type wire PlainTextInputElement
	return decodeFields(FamilyElement, ElementTypePlainTextInput, data, (*wire)(e), schema{})
}

// ImageElement is an inline image, usable as a section accessory or a
// context element.
type ImageElement struct {
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

func (*ImageElement) ElementType() string { return ElementTypeImage }
func (*ImageElement) isElement()          {}
func (*ImageElement) isContextElement()   {}

func (e ImageElement) MarshalJSON() ([]byte, error) {
	type wire ImageElement
	return marshalTagged(ElementTypeImage, wire(e))
}

func (e *ImageElement) UnmarshalJSON(data []byte) error {
	type wire ImageElement
	return decodeFields(FamilyElement, ElementTypeImage, data, (*wire)(e), requires("image_url", "alt_text"))
}

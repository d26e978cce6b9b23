// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import "encoding/json"

// Block discriminators.
const (
	BlockTypeSection = "section"
	BlockTypeDivider = "divider"
	BlockTypeImage   = "image"
	BlockTypeActions = "actions"
	BlockTypeContext = "context"
	BlockTypeInput   = "input"
	BlockTypeFile    = "file"
	BlockTypeCall    = "call"
	BlockTypeHeader  = "header"
)

// Block is one unit of message layout. The set of implementations is
// closed to this package; kinds this version does not know decode into
// *UnknownBlock.
type Block interface {
	BlockType() string
	isBlock()
}

var blockVariants = map[string]func() Block{
	BlockTypeSection: func() Block { return new(SectionBlock) },
	BlockTypeDivider: func() Block { return new(DividerBlock) },
	BlockTypeImage:   func() Block { return new(ImageBlock) },
	BlockTypeActions: func() Block { return new(ActionsBlock) },
	BlockTypeContext: func() Block { return new(ContextBlock) },
	BlockTypeInput:   func() Block { return new(InputBlock) },
	BlockTypeFile:    func() Block { return new(FileBlock) },
	BlockTypeCall:    func() Block { return new(CallBlock) },
	BlockTypeHeader:  func() Block { return new(HeaderBlock) },
}

// Blocks is an ordered list of blocks that decodes each item through
// [DecodeBlock].
type Blocks []Block

func (blocks *Blocks) UnmarshalJSON(data []byte) error {
	decoded, err := decodeList(data, DecodeBlock)
	if err != nil {
		return err
	}
	*blocks = decoded
	return nil
}

// SectionBlock displays text, optionally in two columns of fields, with
// an optional accessory element to the side.
type SectionBlock struct {
	Text      *TextObject   `json:"text,omitempty"`
	BlockID   string        `json:"block_id,omitempty"`
	Fields    []*TextObject `json:"fields,omitempty"`
	Accessory Element       `json:"accessory,omitempty"`
}

func (*SectionBlock) BlockType() string { return BlockTypeSection }
func (*SectionBlock) isBlock()          {}

func (b SectionBlock) MarshalJSON() ([]byte, error) {
	type wire SectionBlock
	return marshalTagged(BlockTypeSection, wire(b))
}

func (b *SectionBlock) UnmarshalJSON(data []byte) error {
	type wire SectionBlock
	var shadow struct {
		*wire
		Accessory json.RawMessage `json:"accessory"`
	}
	shadow.wire = (*wire)(b)
	if err := decodeFields(FamilyBlock, BlockTypeSection, data, &shadow, schema{atLeastOne: []string{"text", "fields"}}); err != nil {
		return err
	}
	accessory, err := decodeNested(FamilyBlock, BlockTypeSection, "accessory", shadow.Accessory, DecodeElement)
	if err != nil {
		return err
	}
	b.Accessory = accessory
	return nil
}

// DividerBlock is a horizontal rule.
type DividerBlock struct {
	BlockID string `json:"block_id,omitempty"`
}

func (*DividerBlock) BlockType() string { return BlockTypeDivider }
func (*DividerBlock) isBlock()          {}

func (b DividerBlock) MarshalJSON() ([]byte, error) {
	type wire DividerBlock
	return marshalTagged(BlockTypeDivider, wire(b))
}

func (b *DividerBlock) UnmarshalJSON(data []byte) error {
	type wire DividerBlock
	return decodeFields(FamilyBlock, BlockTypeDivider, data, (*wire)(b), schema{})
}

// ImageBlock displays a standalone image.
type ImageBlock struct {
	ImageURL string      `json:"image_url"`
	AltText  string      `json:"alt_text"`
	Title    *TextObject `json:"title,omitempty"`
	BlockID  string      `json:"block_id,omitempty"`
}

func (*ImageBlock) BlockType() string { return BlockTypeImage }
func (*ImageBlock) isBlock()          {}

func (b ImageBlock) MarshalJSON() ([]byte, error) {
	type wire ImageBlock
	return marshalTagged(BlockTypeImage, wire(b))
}

func (b *ImageBlock) UnmarshalJSON(data []byte) error {
	type wire ImageBlock
	return decodeFields(FamilyBlock, BlockTypeImage, data, (*wire)(b), requires("image_url", "alt_text"))
}

// ActionsBlock holds interactive elements.
type ActionsBlock struct {
	Elements Elements `json:"elements"`
	BlockID  string   `json:"block_id,omitempty"`
}

func (*ActionsBlock) BlockType() string { return BlockTypeActions }
func (*ActionsBlock) isBlock()          {}

func (b ActionsBlock) MarshalJSON() ([]byte, error) {
	type wire ActionsBlock
	return marshalTagged(BlockTypeActions, wire(b))
}

func (b *ActionsBlock) UnmarshalJSON(data []byte) error {
	type wire ActionsBlock
	return decodeFields(FamilyBlock, BlockTypeActions, data, (*wire)(b), requires("elements"))
}

// ContextBlock shows small images and text as secondary context.
type ContextBlock struct {
	Elements ContextElements `json:"elements"`
	BlockID  string          `json:"block_id,omitempty"`
}

func (*ContextBlock) BlockType() string { return BlockTypeContext }
func (*ContextBlock) isBlock()          {}

func (b ContextBlock) MarshalJSON() ([]byte, error) {
	type wire ContextBlock
	return marshalTagged(BlockTypeContext, wire(b))
}

func (b *ContextBlock) UnmarshalJSON(data []byte) error {
	type wire ContextBlock
	return decodeFields(FamilyBlock, BlockTypeContext, data, (*wire)(b), requires("elements"))
}

// InputBlock collects information from a user in modals and messages.
type InputBlock struct {
	Label          *TextObject `json:"label"`
	Element        Element     `json:"element"`
	DispatchAction bool        `json:"dispatch_action,omitempty"`
	BlockID        string      `json:"block_id,omitempty"`
	Hint           *TextObject `json:"hint,omitempty"`
	Optional       bool        `json:"optional,omitempty"`
}

func (*InputBlock) BlockType() string { return BlockTypeInput }
func (*InputBlock) isBlock()          {}

func (b InputBlock) MarshalJSON() ([]byte, error) {
	type wire InputBlock
	return marshalTagged(BlockTypeInput, wire(b))
}

func (b *InputBlock) UnmarshalJSON(data []byte) error {
	type wire InputBlock
	var shadow struct {
		*wire
		Element json.RawMessage `json:"element"`
	}
	shadow.wire = (*wire)(b)
	if err := decodeFields(FamilyBlock, BlockTypeInput, data, &shadow, requires("label", "element")); err != nil {
		return err
	}
	element, err := decodeNested(FamilyBlock, BlockTypeInput, "element", shadow.Element, DecodeElement)
	if err != nil {
		return err
	}
	b.Element = element
	return nil
}

// FileBlock displays a remote file. Only the API emits these.
type FileBlock struct {
	ExternalID string `json:"external_id"`
	Source     string `json:"source"`
	BlockID    string `json:"block_id,omitempty"`
}

func (*FileBlock) BlockType() string { return BlockTypeFile }
func (*FileBlock) isBlock()          {}

func (b FileBlock) MarshalJSON() ([]byte, error) {
	type wire FileBlock
	return marshalTagged(BlockTypeFile, wire(b))
}

func (b *FileBlock) UnmarshalJSON(data []byte) error {
	type wire FileBlock
	return decodeFields(FamilyBlock, BlockTypeFile, data, (*wire)(b), requires("external_id", "source"))
}

// CallBlock embeds a call registered through the Calls API.
type CallBlock struct {
	CallID  string `json:"call_id"`
	BlockID string `json:"block_id,omitempty"`
}

func (*CallBlock) BlockType() string { return BlockTypeCall }
func (*CallBlock) isBlock()          {}

func (b CallBlock) MarshalJSON() ([]byte, error) {
	type wire CallBlock
	return marshalTagged(BlockTypeCall, wire(b))
}

func (b *CallBlock) UnmarshalJSON(data []byte) error {
	type wire CallBlock
	return decodeFields(FamilyBlock, BlockTypeCall, data, (*wire)(b), requires("call_id"))
}

// HeaderBlock is large bold plain text.
type HeaderBlock struct {
	Text    *TextObject `json:"text"`
	BlockID string      `json:"block_id,omitempty"`
}

func (*HeaderBlock) BlockType() string { return BlockTypeHeader }
func (*HeaderBlock) isBlock()          {}

func (b HeaderBlock) MarshalJSON() ([]byte, error) {
	type wire HeaderBlock
	return marshalTagged(BlockTypeHeader, wire(b))
}

func (b *HeaderBlock) UnmarshalJSON(data []byte) error {
	type wire HeaderBlock
	return decodeFields(FamilyBlock, BlockTypeHeader, data, (*wire)(b), requires("text"))
}

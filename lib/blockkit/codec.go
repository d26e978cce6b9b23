// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
)

// discriminatorField is the wire name of the variant selector shared by
// every block, element, and text object.
const discriminatorField = "type"

// DecodeBlock decodes one block. Unknown discriminators produce an
// *UnknownBlock.
func DecodeBlock(data []byte) (Block, error) {
	variant, err := readDiscriminator(FamilyBlock, data)
	if err != nil {
		return nil, err
	}
	construct, known := blockVariants[variant]
	if !known {
		fields, err := decodeFieldMap(FamilyBlock, data)
		if err != nil {
			return nil, err
		}
		return &UnknownBlock{Type: variant, Fields: fields}, nil
	}
	block := construct()
	if err := json.Unmarshal(data, block); err != nil {
		return nil, fieldError(FamilyBlock, variant, err)
	}
	return block, nil
}

// DecodeElement decodes one interactive or display element. Unknown
// discriminators produce an *UnknownElement.
func DecodeElement(data []byte) (Element, error) {
	variant, err := readDiscriminator(FamilyElement, data)
	if err != nil {
		return nil, err
	}
	construct, known := elementVariants[variant]
	if !known {
		fields, err := decodeFieldMap(FamilyElement, data)
		if err != nil {
			return nil, err
		}
		return &UnknownElement{Type: variant, Fields: fields}, nil
	}
	element := construct()
	if err := json.Unmarshal(data, element); err != nil {
		return nil, fieldError(FamilyElement, variant, err)
	}
	return element, nil
}

// DecodeComposition decodes a composition object. Text objects are
// selected by their "type". Confirmation dialogs, options, and option
// groups carry no "type" on the wire and are recognized by their
// required fields; an explicit "confirm", "option", or "option_group"
// type is also accepted. An object that is neither typed nor
// structurally recognizable fails with MissingDiscriminator.
func DecodeComposition(data []byte) (Composition, error) {
	object, err := parseObject(FamilyComposition, data)
	if err != nil {
		return nil, err
	}

	variant := ""
	if value := object.Get(discriminatorField); value.Exists() && value.Type != gjson.Null {
		if value.Type != gjson.String {
			return nil, &DecodeError{Kind: MalformedField, Family: FamilyComposition, Field: discriminatorField}
		}
		variant = value.Str
	}
	if variant == "" {
		switch {
		case present(object, "label") && present(object, "options"):
			variant = CompositionTypeOptionGroup
		case present(object, "confirm") && present(object, "deny"):
			variant = CompositionTypeConfirm
		case present(object, "text") && (present(object, "value") || present(object, "url")):
			variant = CompositionTypeOption
		default:
			return nil, &DecodeError{Kind: MissingDiscriminator, Family: FamilyComposition}
		}
	}

	var composition Composition
	switch variant {
	case TextTypePlain, TextTypeMarkdown:
		composition = new(TextObject)
	case CompositionTypeConfirm:
		composition = new(ConfirmObject)
	case CompositionTypeOption:
		composition = new(OptionObject)
	case CompositionTypeOptionGroup:
		composition = new(OptionGroupObject)
	default:
		fields, err := decodeFieldMap(FamilyComposition, data)
		if err != nil {
			return nil, err
		}
		return &UnknownComposition{Type: variant, Fields: fields}, nil
	}
	if err := json.Unmarshal(data, composition); err != nil {
		return nil, fieldError(FamilyComposition, variant, err)
	}
	return composition, nil
}

// DecodeAttachment decodes a legacy attachment. Attachments have a
// single schema, so there is no discriminator to resolve.
func DecodeAttachment(data []byte) (*Attachment, error) {
	if _, err := parseObject(FamilyAttachment, data); err != nil {
		return nil, err
	}
	var attachment Attachment
	if err := json.Unmarshal(data, &attachment); err != nil {
		return nil, fieldError(FamilyAttachment, attachmentVariant, err)
	}
	return &attachment, nil
}

// Decode decodes data as a member of the given family. The result is a
// Block, Element, Composition, or *Attachment.
func Decode(data []byte, family Family) (any, error) {
	switch family {
	case FamilyBlock:
		return DecodeBlock(data)
	case FamilyElement:
		return DecodeElement(data)
	case FamilyComposition:
		return DecodeComposition(data)
	case FamilyAttachment:
		return DecodeAttachment(data)
	default:
		return nil, fmt.Errorf("blockkit: unknown family %q", family)
	}
}

// Encode serializes a block, element, composition object, attachment,
// or any structure containing them. Known variants emit their
// discriminator plus populated fields only; Unknown carriers re-emit
// their captured fields.
func Encode(value any) ([]byte, error) {
	data, err := marshalJSON(value)
	if err != nil {
		return nil, fmt.Errorf("blockkit: encoding %T: %w", value, err)
	}
	return data, nil
}

// marshalJSON is json.Marshal without HTML escaping. Slack text is
// full of "<@U1>", "<url|label>", and "&", which must survive a
// decode/encode cycle byte for byte.
func marshalJSON(value any) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// schema lists presence constraints checked before a known variant's
// fields are decoded. A field counts as present when it exists and is
// not null.
type schema struct {
	required   []string
	atLeastOne []string
	exactlyOne []string
}

func requires(fields ...string) schema { return schema{required: fields} }

// violation returns the wire name of the first constraint that object
// fails, or "" if it satisfies all of them.
func (s schema) violation(object gjson.Result) string {
	for _, field := range s.required {
		if !present(object, field) {
			return field
		}
	}
	if len(s.atLeastOne) > 0 && countPresent(object, s.atLeastOne) == 0 {
		return strings.Join(s.atLeastOne, "|")
	}
	if len(s.exactlyOne) > 0 && countPresent(object, s.exactlyOne) != 1 {
		return strings.Join(s.exactlyOne, "|")
	}
	return ""
}

func present(object gjson.Result, field string) bool {
	value := object.Get(field)
	return value.Exists() && value.Type != gjson.Null
}

func countPresent(object gjson.Result, fields []string) int {
	count := 0
	for _, field := range fields {
		if present(object, field) {
			count++
		}
	}
	return count
}

// decodeFields is the shared body of every known variant's
// UnmarshalJSON. target must be a pointer to a method-free alias of the
// variant type so that decoding does not recurse.
func decodeFields(family Family, variant string, data []byte, target any, rules schema) error {
	if !gjson.ValidBytes(data) {
		return &DecodeError{Kind: MalformedJSON, Family: family, Variant: variant}
	}
	object := gjson.ParseBytes(data)
	if !object.IsObject() {
		// A nested value of the wrong JSON kind. encoding/json fills in
		// the field path when this surfaces through a parent decode.
		return &json.UnmarshalTypeError{Value: jsonKind(object), Type: reflect.TypeOf(target).Elem()}
	}
	if field := rules.violation(object); field != "" {
		return &DecodeError{Kind: MalformedField, Family: family, Variant: variant, Field: field}
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fieldError(family, variant, err)
	}
	return nil
}

// fieldError converts an encoding/json failure inside a variant into a
// DecodeError. DecodeErrors raised by nested variants pass through
// unchanged so the innermost context is reported.
func fieldError(family Family, variant string, err error) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Kind: MalformedField, Family: family, Variant: variant, Field: typeErr.Field, Err: err}
	}
	return &DecodeError{Kind: MalformedJSON, Family: family, Variant: variant, Err: err}
}

func parseObject(family Family, data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &DecodeError{Kind: MalformedJSON, Family: family, Err: errors.New("invalid JSON")}
	}
	object := gjson.ParseBytes(data)
	if !object.IsObject() {
		return gjson.Result{}, &DecodeError{
			Kind:   MalformedJSON,
			Family: family,
			Err:    fmt.Errorf("expected an object, got %s", jsonKind(object)),
		}
	}
	return object, nil
}

func readDiscriminator(family Family, data []byte) (string, error) {
	object, err := parseObject(family, data)
	if err != nil {
		return "", err
	}
	value := object.Get(discriminatorField)
	switch {
	case !value.Exists(), value.Type == gjson.Null, value.Type == gjson.String && value.Str == "":
		return "", &DecodeError{Kind: MissingDiscriminator, Family: family}
	case value.Type != gjson.String:
		return "", &DecodeError{Kind: MalformedField, Family: family, Field: discriminatorField}
	}
	return value.Str, nil
}

func decodeFieldMap(family Family, data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &DecodeError{Kind: MalformedJSON, Family: family, Err: err}
	}
	return fields, nil
}

// decodeNested decodes a single polymorphic value held by a parent
// variant (a section accessory, an input element). Returns nil for an
// absent or null value.
func decodeNested[T any](parent Family, parentVariant, field string, raw json.RawMessage, decode func([]byte) (T, error)) (T, error) {
	var zero T
	if len(raw) == 0 || string(raw) == "null" {
		return zero, nil
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return zero, &DecodeError{Kind: MalformedField, Family: parent, Variant: parentVariant, Field: field}
	}
	return decode(raw)
}

// decodeList splits a JSON array and decodes each item. Items that are
// not objects are reported as type errors so the parent's field path is
// attached.
func decodeList[T any](data []byte, decode func([]byte) (T, error)) ([]T, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, nil
	}
	decoded := make([]T, 0, len(items))
	for _, item := range items {
		if result := gjson.ParseBytes(item); !result.IsObject() {
			return nil, &json.UnmarshalTypeError{Value: jsonKind(result), Type: reflect.TypeFor[T]()}
		}
		value, err := decode(item)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, value)
	}
	return decoded, nil
}

// marshalTagged encodes fields (a method-free alias struct) and prepends
// the discriminator, so "type" is always the first key.
func marshalTagged(discriminator string, fields any) ([]byte, error) {
	body, err := marshalJSON(fields)
	if err != nil {
		return nil, err
	}
	tag, err := marshalJSON(discriminator)
	if err != nil {
		return nil, err
	}
	var buffer bytes.Buffer
	buffer.Grow(len(body) + len(tag) + 10)
	buffer.WriteString(`{"type":`)
	buffer.Write(tag)
	if len(body) > 2 {
		buffer.WriteByte(',')
		buffer.Write(body[1:])
	} else {
		buffer.WriteByte('}')
	}
	return buffer.Bytes(), nil
}

// marshalFieldMap re-emits an Unknown carrier. The discriminator is
// taken from variant when the map does not already hold one.
func marshalFieldMap(variant string, fields map[string]json.RawMessage) ([]byte, error) {
	if _, ok := fields[discriminatorField]; ok || variant == "" {
		return marshalJSON(fields)
	}
	merged := make(map[string]json.RawMessage, len(fields)+1)
	for key, value := range fields {
		merged[key] = value
	}
	tag, err := marshalJSON(variant)
	if err != nil {
		return nil, err
	}
	merged[discriminatorField] = tag
	return marshalJSON(merged)
}

func jsonKind(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Null:
		return "null"
	}
	if value.IsArray() {
		return "array"
	}
	return "object"
}

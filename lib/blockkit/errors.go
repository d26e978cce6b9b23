// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import (
	"errors"
	"fmt"
)

// Family names one of the polymorphic families the codec decodes.
type Family string

const (
	FamilyBlock       Family = "block"
	FamilyElement     Family = "element"
	FamilyComposition Family = "composition object"
	FamilyAttachment  Family = "attachment"
)

// DecodeErrorKind classifies a [DecodeError].
type DecodeErrorKind int

const (
	// MalformedJSON means the input is not valid JSON, or is valid JSON
	// but not an object where an object is required.
	MalformedJSON DecodeErrorKind = iota + 1

	// MissingDiscriminator means the object has no "type" field (or an
	// empty or null one) and the family cannot be resolved without it.
	MissingDiscriminator

	// MalformedField means the discriminator matched a known variant
	// but a required field is absent or a field has the wrong JSON type.
	MalformedField
)

func (kind DecodeErrorKind) String() string {
	switch kind {
	case MalformedJSON:
		return "malformed JSON"
	case MissingDiscriminator:
		return "missing discriminator"
	case MalformedField:
		return "malformed field"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", int(kind))
	}
}

// DecodeError reports a failure to decode a block, element, composition
// object, or attachment. Unknown discriminators are never a DecodeError;
// they decode into the family's Unknown carrier.
//
// Callers can use errors.As to extract the structured information:
//
//	var decodeErr *blockkit.DecodeError
//	if errors.As(err, &decodeErr) && decodeErr.Kind == blockkit.MalformedField {
//	    log.Printf("bad %s.%s", decodeErr.Variant, decodeErr.Field)
//	}
type DecodeError struct {
	Kind   DecodeErrorKind
	Family Family

	// Variant is the discriminator of the variant being decoded. Empty
	// for MalformedJSON and MissingDiscriminator.
	Variant string

	// Field is the wire name (dotted path for nested values) of the
	// offending field. Set only for MalformedField.
	Field string

	// Err is the underlying encoding/json error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	var message string
	switch e.Kind {
	case MalformedJSON:
		message = fmt.Sprintf("blockkit: malformed %s JSON", e.Family)
	case MissingDiscriminator:
		message = fmt.Sprintf("blockkit: %s has no \"type\" discriminator", e.Family)
	case MalformedField:
		message = fmt.Sprintf("blockkit: %s %q: field %q is missing or has the wrong type", e.Family, e.Variant, e.Field)
	default:
		message = fmt.Sprintf("blockkit: %s decode failed (%s)", e.Family, e.Kind)
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err is a *DecodeError of the given kind.
func IsDecodeError(err error, kind DecodeErrorKind) bool {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Kind == kind
	}
	return false
}

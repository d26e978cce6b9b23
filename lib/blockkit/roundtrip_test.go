// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/bureau-foundation/slackweb/lib/ref"
)

func intPointer(v int) *int { return &v }

func fullConfirm() *ConfirmObject {
	return &ConfirmObject{
		Title:   NewPlainText("Are you sure?"),
		Text:    NewMarkdown("This *cannot* be undone."),
		Confirm: NewPlainText("Do it"),
		Deny:    NewPlainText("Stop"),
		Style:   "danger",
	}
}

func fullOptions() []*OptionObject {
	return []*OptionObject{
		NewOption("First", "1"),
		{Text: NewPlainText("Second"), Value: "2", Description: NewPlainText("the second one")},
	}
}

func TestBlockRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		block Block
	}{
		{"section minimal", &SectionBlock{Text: NewPlainText("hello")}},
		{"section fields only", &SectionBlock{Fields: []*TextObject{NewMarkdown("*a*"), NewMarkdown("*b*")}}},
		{"section full", &SectionBlock{
			Text:      &TextObject{Type: TextTypeMarkdown, Text: "hi", Verbatim: Bool(false)},
			BlockID:   "s1",
			Fields:    []*TextObject{{Type: TextTypePlain, Text: "f", Emoji: Bool(true)}},
			Accessory: &ButtonElement{Text: NewPlainText("Go"), ActionID: "go"},
		}},
		{"divider minimal", &DividerBlock{}},
		{"divider full", &DividerBlock{BlockID: "d1"}},
		{"image minimal", &ImageBlock{ImageURL: "https://example.com/a.png", AltText: "a"}},
		{"image full", &ImageBlock{
			ImageURL: "https://example.com/a.png",
			AltText:  "a",
			Title:    NewPlainText("A picture"),
			BlockID:  "img1",
		}},
		{"actions minimal", &ActionsBlock{Elements: Elements{&ButtonElement{Text: NewPlainText("x")}}}},
		{"actions full", &ActionsBlock{
			BlockID: "a1",
			Elements: Elements{
				&ButtonElement{Text: NewPlainText("Approve"), ActionID: "approve", Style: "primary", Value: "yes"},
				&DatePickerElement{ActionID: "date", InitialDate: "2026-10-19"},
				&OverflowElement{Options: []*OptionObject{{Text: NewPlainText("Docs"), URL: "https://example.com"}}},
			},
		}},
		{"context minimal", &ContextBlock{Elements: ContextElements{NewMarkdown("by *bot*")}}},
		{"context full", &ContextBlock{
			BlockID: "c1",
			Elements: ContextElements{
				&ImageElement{ImageURL: "https://example.com/i.png", AltText: "icon"},
				NewPlainText("text"),
			},
		}},
		{"input minimal", &InputBlock{Label: NewPlainText("Name"), Element: &PlainTextInputElement{}}},
		{"input full", &InputBlock{
			Label:          NewPlainText("Reason"),
			Element:        &PlainTextInputElement{ActionID: "reason", Multiline: true, MaxLength: intPointer(500)},
			DispatchAction: true,
			BlockID:        "in1",
			Hint:           NewPlainText("Be brief"),
			Optional:       true,
		}},
		{"file", &FileBlock{ExternalID: "ABCD1", Source: "remote", BlockID: "f1"}},
		{"call", &CallBlock{CallID: "R01", BlockID: "call1"}},
		{"header minimal", &HeaderBlock{Text: NewPlainText("Budget")}},
		{"header full", &HeaderBlock{Text: &TextObject{Type: TextTypePlain, Text: "Budget", Emoji: Bool(true)}, BlockID: "h1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := Encode(test.block)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := DecodeBlock(data)
			if err != nil {
				t.Fatalf("DecodeBlock(%s): %v", data, err)
			}
			if !reflect.DeepEqual(decoded, test.block) {
				t.Errorf("round trip mismatch\n  encoded: %s\n  got:  %#v\n  want: %#v", data, decoded, test.block)
			}
			if decoded.BlockType() != test.block.BlockType() {
				t.Errorf("BlockType = %q, want %q", decoded.BlockType(), test.block.BlockType())
			}
		})
	}
}

func TestElementRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		element Element
	}{
		{"button minimal", &ButtonElement{Text: NewPlainText("Click")}},
		{"button full", &ButtonElement{
			Text:               NewPlainText("Click"),
			ActionID:           "click",
			URL:                "https://example.com",
			Value:              "v",
			Style:              "danger",
			Confirm:            fullConfirm(),
			AccessibilityLabel: "click me",
		}},
		{"static select options", &StaticSelectElement{Options: fullOptions()}},
		{"static select groups", &StaticSelectElement{
			Placeholder:   NewPlainText("Pick"),
			ActionID:      "pick",
			OptionGroups:  []*OptionGroupObject{{Label: NewPlainText("Group"), Options: fullOptions()}},
			InitialOption: NewOption("First", "1"),
			Confirm:       fullConfirm(),
			FocusOnLoad:   true,
		}},
		{"external select minimal", &ExternalSelectElement{}},
		{"external select full", &ExternalSelectElement{
			Placeholder:    NewPlainText("Search"),
			ActionID:       "search",
			InitialOption:  NewOption("Found", "f"),
			MinQueryLength: intPointer(0),
			Confirm:        fullConfirm(),
		}},
		{"users select minimal", &UsersSelectElement{}},
		{"users select full", &UsersSelectElement{
			Placeholder: NewPlainText("Who"),
			ActionID:    "u",
			InitialUser: "U123",
			Confirm:     fullConfirm(),
			FocusOnLoad: true,
		}},
		{"conversations select minimal", &ConversationsSelectElement{}},
		{"conversations select full", &ConversationsSelectElement{
			Placeholder:                  NewPlainText("Where"),
			ActionID:                     "conv",
			InitialConversation:          "C123",
			DefaultToCurrentConversation: true,
			ResponseURLEnabled:           true,
			Filter:                       &ConversationFilter{Include: []string{"public", "private"}, ExcludeExternalSharedChannels: true, ExcludeBotUsers: true},
			Confirm:                      fullConfirm(),
			FocusOnLoad:                  true,
		}},
		{"channels select minimal", &ChannelsSelectElement{}},
		{"channels select full", &ChannelsSelectElement{
			Placeholder:        NewPlainText("Channel"),
			ActionID:           "ch",
			InitialChannel:     "C1",
			ResponseURLEnabled: true,
			Confirm:            fullConfirm(),
			FocusOnLoad:        true,
		}},
		{"multi static select minimal", &MultiStaticSelectElement{Options: fullOptions()}},
		{"multi static select full", &MultiStaticSelectElement{
			Placeholder:      NewPlainText("Pick some"),
			ActionID:         "ms",
			Options:          fullOptions(),
			InitialOptions:   []*OptionObject{NewOption("First", "1")},
			Confirm:          fullConfirm(),
			MaxSelectedItems: 2,
			FocusOnLoad:      true,
		}},
		{"multi static select groups", &MultiStaticSelectElement{
			OptionGroups: []*OptionGroupObject{{Label: NewPlainText("Group"), Options: fullOptions()}},
		}},
		{"multi external select minimal", &MultiExternalSelectElement{}},
		{"multi external select full", &MultiExternalSelectElement{
			Placeholder:      NewPlainText("Search"),
			ActionID:         "mx",
			InitialOptions:   []*OptionObject{NewOption("Found", "f")},
			MinQueryLength:   intPointer(3),
			Confirm:          fullConfirm(),
			MaxSelectedItems: 4,
			FocusOnLoad:      true,
		}},
		{"multi users select minimal", &MultiUsersSelectElement{}},
		{"multi users select full", &MultiUsersSelectElement{
			Placeholder:      NewPlainText("Who"),
			ActionID:         "mu",
			InitialUsers:     []string{"U1", "U2"},
			Confirm:          fullConfirm(),
			MaxSelectedItems: 3,
			FocusOnLoad:      true,
		}},
		{"multi conversations select minimal", &MultiConversationsSelectElement{}},
		{"multi conversations select full", &MultiConversationsSelectElement{
			Placeholder:                  NewPlainText("Where"),
			ActionID:                     "mc",
			InitialConversations:         []string{"C1"},
			DefaultToCurrentConversation: true,
			Filter:                       &ConversationFilter{Include: []string{"im", "mpim"}},
			Confirm:                      fullConfirm(),
			MaxSelectedItems:             5,
			FocusOnLoad:                  true,
		}},
		{"multi channels select minimal", &MultiChannelsSelectElement{}},
		{"multi channels select full", &MultiChannelsSelectElement{
			Placeholder:      NewPlainText("Channels"),
			ActionID:         "mch",
			InitialChannels:  []string{"C1", "C2"},
			Confirm:          fullConfirm(),
			MaxSelectedItems: 2,
			FocusOnLoad:      true,
		}},
		{"overflow minimal", &OverflowElement{Options: fullOptions()}},
		{"overflow full", &OverflowElement{ActionID: "more", Options: fullOptions(), Confirm: fullConfirm()}},
		{"datepicker minimal", &DatePickerElement{}},
		{"datepicker full", &DatePickerElement{
			ActionID:    "date",
			Placeholder: NewPlainText("When"),
			InitialDate: "2026-10-19",
			Confirm:     fullConfirm(),
			FocusOnLoad: true,
		}},
		{"checkboxes minimal", &CheckboxesElement{Options: fullOptions()}},
		{"checkboxes full", &CheckboxesElement{
			ActionID:       "cb",
			Options:        fullOptions(),
			InitialOptions: fullOptions()[:1],
			Confirm:        fullConfirm(),
			FocusOnLoad:    true,
		}},
		{"radio buttons minimal", &RadioButtonsElement{Options: fullOptions()}},
		{"radio buttons full", &RadioButtonsElement{
			ActionID:      "radio",
			Options:       fullOptions(),
			InitialOption: NewOption("First", "1"),
			Confirm:       fullConfirm(),
			FocusOnLoad:   true,
		}},
		{"plain text input minimal", &PlainTextInputElement{}},
		{"plain text input full", &PlainTextInputElement{
			ActionID:             "pti",
			Placeholder:          NewPlainText("Type"),
			InitialValue:         "draft",
			Multiline:            true,
			MinLength:            intPointer(1),
			MaxLength:            intPointer(3000),
			DispatchActionConfig: &DispatchActionConfig{TriggerActionsOn: []string{"on_enter_pressed"}},
			FocusOnLoad:          true,
		}},
		{"image", &ImageElement{ImageURL: "https://example.com/i.png", AltText: "i"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := Encode(test.element)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := DecodeElement(data)
			if err != nil {
				t.Fatalf("DecodeElement(%s): %v", data, err)
			}
			if !reflect.DeepEqual(decoded, test.element) {
				t.Errorf("round trip mismatch\n  encoded: %s\n  got:  %#v\n  want: %#v", data, decoded, test.element)
			}
		})
	}
}

func TestCompositionRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		composition Composition
	}{
		{"plain text", NewPlainText("hi")},
		{"plain text with emoji", &TextObject{Type: TextTypePlain, Text: "hi :wave:", Emoji: Bool(false)}},
		{"markdown verbatim", &TextObject{Type: TextTypeMarkdown, Text: "<@U1>", Verbatim: Bool(true)}},
		{"confirm", fullConfirm()},
		{"option minimal", NewOption("One", "1")},
		{"option full", &OptionObject{Text: NewMarkdown("*One*"), Value: "1", Description: NewPlainText("d"), URL: "https://example.com"}},
		{"option url only", &OptionObject{Text: NewPlainText("Docs"), URL: "https://example.com"}},
		{"option group", &OptionGroupObject{Label: NewPlainText("G"), Options: fullOptions()}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := Encode(test.composition)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := DecodeComposition(data)
			if err != nil {
				t.Fatalf("DecodeComposition(%s): %v", data, err)
			}
			if !reflect.DeepEqual(decoded, test.composition) {
				t.Errorf("round trip mismatch\n  encoded: %s\n  got:  %#v\n  want: %#v", data, decoded, test.composition)
			}
		})
	}
}

// A text-only option has neither value nor url. Both decode paths must
// reject it the same way: standalone and nested inside a menu.
func TestOptionWithoutValueRejected(t *testing.T) {
	data, err := Encode(&OptionObject{Text: NewPlainText("One")})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tests := []struct {
		name   string
		decode func() error
	}{
		{"standalone", func() error { _, err := DecodeComposition(data); return err }},
		{"explicit type", func() error {
			_, err := DecodeComposition([]byte(`{"type":"option","text":{"type":"plain_text","text":"One"}}`))
			return err
		}},
		{"in overflow", func() error {
			_, err := DecodeElement([]byte(`{"type":"overflow","options":[` + string(data) + `]}`))
			return err
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.decode()
			if err == nil {
				t.Fatal("expected an error for an option without value or url")
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %T: %v", err, err)
			}
			if decodeErr.Kind == MalformedJSON {
				t.Errorf("Kind = %v, want a missing-field error", decodeErr.Kind)
			}
		})
	}
}

func TestAttachmentRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		attachment *Attachment
	}{
		{"empty", &Attachment{}},
		{"full", &Attachment{
			ID:         1,
			Fallback:   "Build passed",
			Color:      "#36a64f",
			Pretext:    "CI",
			AuthorName: "ci-bot",
			AuthorLink: "https://ci.example.com",
			AuthorIcon: "https://ci.example.com/icon.png",
			Title:      "Build 42",
			TitleLink:  "https://ci.example.com/42",
			Text:       "All *green*",
			Fields: []*AttachmentField{
				{Title: "Branch", Value: "main", Short: true},
				{Title: "Duration", Value: "3m"},
			},
			ImageURL:   "https://ci.example.com/graph.png",
			ThumbURL:   "https://ci.example.com/thumb.png",
			Footer:     "ci",
			FooterIcon: "https://ci.example.com/f.png",
			TS:         ref.MustParseTimestamp("1503435956.000247"),
			MarkdownIn: []string{"text", "pretext"},
			CallbackID: "build_42",
			Actions: []*AttachmentAction{
				{Name: "rerun", Text: "Rerun", Type: "button", Value: "42", Style: "danger",
					Confirm: &AttachmentActionConfirm{Title: "Sure?", Text: "Rerun build 42", OkText: "Yes", DismissText: "No"}},
				{Name: "env", Text: "Env", Type: "select", Options: []*AttachmentActionOption{{Text: "prod", Value: "prod"}}},
			},
			Blocks:      Blocks{&DividerBlock{}, &SectionBlock{Text: NewMarkdown("details")}},
			FromURL:     "https://ci.example.com/42",
			ServiceName: "CI",
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := Encode(test.attachment)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := DecodeAttachment(data)
			if err != nil {
				t.Fatalf("DecodeAttachment(%s): %v", data, err)
			}
			if !reflect.DeepEqual(decoded, test.attachment) {
				t.Errorf("round trip mismatch\n  encoded: %s\n  got:  %#v\n  want: %#v", data, decoded, test.attachment)
			}
		})
	}
}

func TestImageBlockMessageRoundTrip(t *testing.T) {
	// A message payload with one image block re-encodes to the same bytes.
	input := `{"blocks":[{"type":"image","image_url":"https://example.com/a.png","alt_text":"a cat","block_id":"img1"}]}`

	var message struct {
		Blocks Blocks `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(input), &message); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(message.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(message.Blocks))
	}
	image, ok := message.Blocks[0].(*ImageBlock)
	if !ok {
		t.Fatalf("block is %T, want *ImageBlock", message.Blocks[0])
	}
	if image.ImageURL != "https://example.com/a.png" || image.AltText != "a cat" || image.BlockID != "img1" {
		t.Errorf("unexpected image block: %+v", image)
	}

	encoded, err := Encode(message)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(encoded) != input {
		t.Errorf("re-encoded payload differs\n  got:  %s\n  want: %s", encoded, input)
	}
}

func TestEncodeOmitsUnsetFields(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"divider", &DividerBlock{}, `{"type":"divider"}`},
		{"image", &ImageBlock{ImageURL: "u", AltText: "a"}, `{"type":"image","image_url":"u","alt_text":"a"}`},
		{"button", &ButtonElement{Text: NewPlainText("b")}, `{"type":"button","text":{"type":"plain_text","text":"b"}}`},
		{"explicit false emoji", &TextObject{Type: TextTypePlain, Text: "x", Emoji: Bool(false)}, `{"type":"plain_text","text":"x","emoji":false}`},
		{"option has no type", NewOption("a", "1"), `{"text":{"type":"plain_text","text":"a"},"value":"1"}`},
		{"attachment ts as string", &Attachment{TS: ref.MustParseTimestamp("12.50")}, `{"ts":"12.50"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := Encode(test.value)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if string(data) != test.want {
				t.Errorf("Encode = %s, want %s", data, test.want)
			}
		})
	}
}

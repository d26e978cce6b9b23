// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import "github.com/bureau-foundation/slackweb/lib/ref"

// attachmentVariant names the single attachment schema in DecodeErrors.
const attachmentVariant = "attachment"

// Attachment is the legacy secondary-content structure. It predates
// blocks and coexists with them: a message may carry both, and an
// attachment may itself carry blocks.
type Attachment struct {
	ID       int    `json:"id,omitempty"`
	Fallback string `json:"fallback,omitempty"`

	// Color is "good", "warning", "danger", or a hex code like "#439FE0".
	Color   string `json:"color,omitempty"`
	Pretext string `json:"pretext,omitempty"`

	AuthorID      string `json:"author_id,omitempty"`
	AuthorName    string `json:"author_name,omitempty"`
	AuthorSubname string `json:"author_subname,omitempty"`
	AuthorLink    string `json:"author_link,omitempty"`
	AuthorIcon    string `json:"author_icon,omitempty"`

	Title     string `json:"title,omitempty"`
	TitleLink string `json:"title_link,omitempty"`
	Text      string `json:"text,omitempty"`

	Fields []*AttachmentField `json:"fields,omitempty"`

	ImageURL    string `json:"image_url,omitempty"`
	ImageWidth  int    `json:"image_width,omitempty"`
	ImageHeight int    `json:"image_height,omitempty"`
	ImageBytes  int    `json:"image_bytes,omitempty"`
	ThumbURL    string `json:"thumb_url,omitempty"`
	ThumbWidth  int    `json:"thumb_width,omitempty"`
	ThumbHeight int    `json:"thumb_height,omitempty"`
	VideoHTML   string `json:"video_html,omitempty"`

	Footer     string `json:"footer,omitempty"`
	FooterIcon string `json:"footer_icon,omitempty"`

	// TS arrives as either a string or a bare number.
	TS ref.Timestamp `json:"ts,omitzero"`

	// MarkdownIn lists the fields ("pretext", "text", "fields") whose
	// contents are formatted as mrkdwn.
	MarkdownIn []string `json:"mrkdwn_in,omitempty"`

	CallbackID     string              `json:"callback_id,omitempty"`
	AttachmentType string              `json:"attachment_type,omitempty"`
	Actions        []*AttachmentAction `json:"actions,omitempty"`
	Blocks         Blocks              `json:"blocks,omitempty"`

	// Unfurl metadata, populated by the server.
	FromURL     string `json:"from_url,omitempty"`
	OriginalURL string `json:"original_url,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
	ServiceIcon string `json:"service_icon,omitempty"`
	IsMsgUnfurl bool   `json:"is_msg_unfurl,omitempty"`
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	type wire Attachment
	return decodeFields(FamilyAttachment, attachmentVariant, data, (*wire)(a), schema{})
}

// AttachmentField is one row of an attachment's field table.
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short,omitempty"`
}

// AttachmentAction is a legacy interactive button or menu.
type AttachmentAction struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Text string `json:"text,omitempty"`

	// Type is "button" or "select".
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Style string `json:"style,omitempty"`
	URL   string `json:"url,omitempty"`

	Confirm *AttachmentActionConfirm `json:"confirm,omitempty"`

	// Menu fields, used when Type is "select".
	DataSource      string                         `json:"data_source,omitempty"`
	MinQueryLength  int                            `json:"min_query_length,omitempty"`
	Options         []*AttachmentActionOption      `json:"options,omitempty"`
	SelectedOptions []*AttachmentActionOption      `json:"selected_options,omitempty"`
	OptionGroups    []*AttachmentActionOptionGroup `json:"option_groups,omitempty"`
}

// AttachmentActionConfirm is the legacy confirmation dialog.
type AttachmentActionConfirm struct {
	Title       string `json:"title,omitempty"`
	Text        string `json:"text"`
	OkText      string `json:"ok_text,omitempty"`
	DismissText string `json:"dismiss_text,omitempty"`
}

// AttachmentActionOption is a legacy menu option.
type AttachmentActionOption struct {
	Text        string `json:"text"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// AttachmentActionOptionGroup is a labeled group of legacy menu options.
type AttachmentActionOptionGroup struct {
	Text    string                    `json:"text"`
	Options []*AttachmentActionOption `json:"options"`
}

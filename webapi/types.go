// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"encoding/json"

	"github.com/bureau-foundation/slackweb/lib/blockkit"
	"github.com/bureau-foundation/slackweb/lib/ref"
)

// Channel is a conversation: a public or private channel, a legacy
// private group, a direct message, or a multi-party direct message.
type Channel struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	NameNormalized string `json:"name_normalized,omitempty"`

	IsChannel  bool `json:"is_channel,omitempty"`
	IsGroup    bool `json:"is_group,omitempty"`
	IsIM       bool `json:"is_im,omitempty"`
	IsMPIM     bool `json:"is_mpim,omitempty"`
	IsPrivate  bool `json:"is_private,omitempty"`
	IsArchived bool `json:"is_archived,omitempty"`
	IsGeneral  bool `json:"is_general,omitempty"`
	IsShared   bool `json:"is_shared,omitempty"`
	IsMember   bool `json:"is_member,omitempty"`
	IsOpen     bool `json:"is_open,omitempty"`

	// Created is a Unix time in seconds.
	Created int64  `json:"created,omitempty"`
	Creator string `json:"creator,omitempty"`

	// User is the other party of a direct message.
	User string `json:"user,omitempty"`

	// ParentGroup is set on a group created by groups.createChild.
	ParentGroup string `json:"parent_group,omitempty"`

	Members       []string `json:"members,omitempty"`
	NumMembers    int      `json:"num_members,omitempty"`
	PreviousNames []string `json:"previous_names,omitempty"`

	Topic   Topic `json:"topic,omitzero"`
	Purpose Topic `json:"purpose,omitzero"`

	LastRead           ref.Timestamp `json:"last_read,omitzero"`
	Latest             *Message      `json:"latest,omitempty"`
	UnreadCount        int           `json:"unread_count,omitempty"`
	UnreadCountDisplay int           `json:"unread_count_display,omitempty"`
}

// Topic is a channel topic or purpose.
type Topic struct {
	Value   string `json:"value"`
	Creator string `json:"creator,omitempty"`
	LastSet int64  `json:"last_set,omitempty"`
}

// Message is one message in a conversation history or a post result.
// Blocks and Attachments decode through blockkit, so unknown block
// kinds survive and malformed content fails the call.
type Message struct {
	Type     string `json:"type,omitempty"`
	Subtype  string `json:"subtype,omitempty"`
	Channel  string `json:"channel,omitempty"`
	User     string `json:"user,omitempty"`
	BotID    string `json:"bot_id,omitempty"`
	Username string `json:"username,omitempty"`
	Team     string `json:"team,omitempty"`
	Text     string `json:"text,omitempty"`

	TS       ref.Timestamp `json:"ts,omitzero"`
	ThreadTS ref.Timestamp `json:"thread_ts,omitzero"`

	Blocks      blockkit.Blocks        `json:"blocks,omitempty"`
	Attachments []*blockkit.Attachment `json:"attachments,omitempty"`
	Files       []*File                `json:"files,omitempty"`
	Reactions   []*Reaction            `json:"reactions,omitempty"`

	Edited *Edited `json:"edited,omitempty"`

	// Thread state, present on thread parents.
	ReplyCount      int           `json:"reply_count,omitempty"`
	ReplyUsers      []string      `json:"reply_users,omitempty"`
	ReplyUsersCount int           `json:"reply_users_count,omitempty"`
	LatestReply     ref.Timestamp `json:"latest_reply,omitzero"`
	Subscribed      bool          `json:"subscribed,omitempty"`

	// Root is the thread parent of a thread_broadcast message.
	Root *Message `json:"root,omitempty"`

	Permalink string `json:"permalink,omitempty"`
}

// Edited records the last edit of a message.
type Edited struct {
	User string        `json:"user"`
	TS   ref.Timestamp `json:"ts"`
}

// Reaction is one emoji reaction on a message.
type Reaction struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Users []string `json:"users,omitempty"`
}

// User is a workspace member.
type User struct {
	ID       string  `json:"id"`
	TeamID   string  `json:"team_id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Deleted  bool    `json:"deleted,omitempty"`
	Color    string  `json:"color,omitempty"`
	RealName string  `json:"real_name,omitempty"`
	TZ       string  `json:"tz,omitempty"`
	TZLabel  string  `json:"tz_label,omitempty"`
	TZOffset int     `json:"tz_offset,omitempty"`
	Profile  Profile `json:"profile,omitzero"`

	IsAdmin           bool `json:"is_admin,omitempty"`
	IsOwner           bool `json:"is_owner,omitempty"`
	IsPrimaryOwner    bool `json:"is_primary_owner,omitempty"`
	IsRestricted      bool `json:"is_restricted,omitempty"`
	IsUltraRestricted bool `json:"is_ultra_restricted,omitempty"`
	IsBot             bool `json:"is_bot,omitempty"`
	IsAppUser         bool `json:"is_app_user,omitempty"`

	Updated int64 `json:"updated,omitempty"`
	Has2FA  bool  `json:"has_2fa,omitempty"`

	// Presence is set by users.list with presence=true.
	Presence string `json:"presence,omitempty"`
}

// Profile is the editable part of a user.
type Profile struct {
	Title                 string `json:"title,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	Skype                 string `json:"skype,omitempty"`
	RealName              string `json:"real_name,omitempty"`
	RealNameNormalized    string `json:"real_name_normalized,omitempty"`
	DisplayName           string `json:"display_name,omitempty"`
	DisplayNameNormalized string `json:"display_name_normalized,omitempty"`
	FirstName             string `json:"first_name,omitempty"`
	LastName              string `json:"last_name,omitempty"`
	Email                 string `json:"email,omitempty"`
	Team                  string `json:"team,omitempty"`

	StatusText          string `json:"status_text,omitempty"`
	StatusTextCanonical string `json:"status_text_canonical,omitempty"`
	StatusEmoji         string `json:"status_emoji,omitempty"`
	StatusExpiration    int64  `json:"status_expiration,omitempty"`

	AvatarHash    string `json:"avatar_hash,omitempty"`
	IsCustomImage bool   `json:"is_custom_image,omitempty"`
	ImageOriginal string `json:"image_original,omitempty"`
	Image24       string `json:"image_24,omitempty"`
	Image32       string `json:"image_32,omitempty"`
	Image48       string `json:"image_48,omitempty"`
	Image72       string `json:"image_72,omitempty"`
	Image192      string `json:"image_192,omitempty"`
	Image512      string `json:"image_512,omitempty"`
	Image1024     string `json:"image_1024,omitempty"`

	BotID        string `json:"bot_id,omitempty"`
	APIAppID     string `json:"api_app_id,omitempty"`
	AlwaysActive bool   `json:"always_active,omitempty"`
}

// Usergroup is a user group (also called a subteam).
type Usergroup struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id,omitempty"`
	IsUsergroup bool   `json:"is_usergroup,omitempty"`
	IsExternal  bool   `json:"is_external,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Handle      string `json:"handle,omitempty"`
	AutoType    string `json:"auto_type,omitempty"`

	// Unix times in seconds. DateDelete is zero while enabled.
	DateCreate int64 `json:"date_create,omitempty"`
	DateUpdate int64 `json:"date_update,omitempty"`
	DateDelete int64 `json:"date_delete,omitempty"`

	CreatedBy string `json:"created_by,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
	DeletedBy string `json:"deleted_by,omitempty"`

	Prefs UsergroupPrefs `json:"prefs,omitzero"`
	Users []string       `json:"users,omitempty"`

	// UserCount arrives as a number from usergroups.list and as a
	// string in subteam events.
	UserCount json.Number `json:"user_count,omitempty"`
}

// UsergroupPrefs holds a user group's default channels.
type UsergroupPrefs struct {
	Channels []string `json:"channels,omitempty"`
	Groups   []string `json:"groups,omitempty"`
}

// ScheduledMessage is a message queued by chat.scheduleMessage.
type ScheduledMessage struct {
	ID          string `json:"id"`
	ChannelID   string `json:"channel_id"`
	PostAt      int64  `json:"post_at"`
	DateCreated int64  `json:"date_created"`
	Text        string `json:"text,omitempty"`
}

// File is an uploaded file.
type File struct {
	ID                 string   `json:"id"`
	Created            int64    `json:"created,omitempty"`
	Timestamp          int64    `json:"timestamp,omitempty"`
	Name               string   `json:"name,omitempty"`
	Title              string   `json:"title,omitempty"`
	Mimetype           string   `json:"mimetype,omitempty"`
	Filetype           string   `json:"filetype,omitempty"`
	PrettyType         string   `json:"pretty_type,omitempty"`
	User               string   `json:"user,omitempty"`
	Size               int64    `json:"size,omitempty"`
	Mode               string   `json:"mode,omitempty"`
	IsPublic           bool     `json:"is_public,omitempty"`
	URLPrivate         string   `json:"url_private,omitempty"`
	URLPrivateDownload string   `json:"url_private_download,omitempty"`
	Permalink          string   `json:"permalink,omitempty"`
	PermalinkPublic    string   `json:"permalink_public,omitempty"`
	Channels           []string `json:"channels,omitempty"`
	Groups             []string `json:"groups,omitempty"`
	IMs                []string `json:"ims,omitempty"`
}

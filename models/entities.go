// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntityType identifies the kind of a caption formatting entity.
type EntityType int

const (
	EntityUnknown EntityType = iota
	EntityBold
	EntityItalic
	EntityUnderline
	EntityStrike
	EntitySpoiler
	EntityCode
	EntityPre
	EntityURL
	EntityTextURL
	EntityMention
	EntityMentionName
	EntityHashtag
	EntityCustomEmoji
)

// MessageEntity is a formatting range applied to the caption text.
// Offset and Length are expressed in UTF-16 code units, the unit the caption
// editor works with.
type MessageEntity struct {
	Type   EntityType `json:"type"`
	Offset int32      `json:"offset"`
	Length int32      `json:"length"`

	// Language is set for EntityPre.
	Language string `json:"language,omitempty"`

	// URL is set for EntityTextURL.
	URL string `json:"url,omitempty"`

	// UserID is set for EntityMentionName.
	UserID int64 `json:"user_id,omitempty"`

	// DocumentID is set for EntityCustomEmoji.
	DocumentID int64 `json:"document_id,omitempty"`
}

// PrivacyRuleType identifies the kind of a story privacy rule.
type PrivacyRuleType int

const (
	PrivacyUnknown PrivacyRuleType = iota
	PrivacyAllowAll
	PrivacyAllowContacts
	PrivacyAllowCloseFriends
	PrivacyAllowUsers
	PrivacyDisallowAll
	PrivacyDisallowContacts
	PrivacyDisallowUsers
)

// PrivacyRule restricts who can see the published story. UserIDs is used only
// by the *Users rule types.
type PrivacyRule struct {
	Type    PrivacyRuleType `json:"type"`
	UserIDs []int64         `json:"user_ids,omitempty"`
}

// MediaEntityType identifies the kind of overlay placed on the canvas.
type MediaEntityType int32

const (
	MediaEntitySticker  MediaEntityType = 0
	MediaEntityText     MediaEntityType = 1
	MediaEntityPhoto    MediaEntityType = 2
	MediaEntityLocation MediaEntityType = 3
	MediaEntityReaction MediaEntityType = 4
)

// MediaEntity is a positioned overlay (sticker, text, photo, location...)
// drawn on top of the story media. Coordinates are normalized to the result
// canvas.
type MediaEntity struct {
	Type       MediaEntityType `json:"type"`
	SubType    int32           `json:"sub_type"`
	X          float32         `json:"x"`
	Y          float32         `json:"y"`
	Width      float32         `json:"width"`
	Height     float32         `json:"height"`
	Rotation   float32         `json:"rotation"`
	Scale      float32         `json:"scale"`
	Text       string          `json:"text,omitempty"`
	Color      int32           `json:"color"`
	DocumentID int64           `json:"document_id,omitempty"`
}

// StickerRef references a sticker document attached to the story. Empty
// marks a reference whose document is no longer available.
type StickerRef struct {
	Empty         bool   `json:"empty,omitempty"`
	ID            int64  `json:"id"`
	AccessHash    int64  `json:"access_hash"`
	FileReference []byte `json:"file_reference,omitempty"`
}

// DraftError describes why an upload failed.
type DraftError struct {
	Code int32  `json:"code"`
	Text string `json:"text"`
}

// AudioTrack is a music track mixed into a video story.
type AudioTrack struct {
	Path     string  `json:"path"`
	Author   string  `json:"author,omitempty"`
	Title    string  `json:"title,omitempty"`
	Duration int64   `json:"duration"`
	Offset   int64   `json:"offset"`
	Left     float32 `json:"left"`
	Right    float32 `json:"right"`
	Volume   float32 `json:"volume"`
}

// RoundTrack is a round video recorded on top of the story.
type RoundTrack struct {
	Path     string  `json:"path"`
	Duration int64   `json:"duration"`
	Offset   int64   `json:"offset"`
	Left     float32 `json:"left"`
	Right    float32 `json:"right"`
	Volume   float32 `json:"volume"`
}

// PeerKind identifies who the story is published for.
type PeerKind int

const (
	PeerSelf PeerKind = iota
	PeerUser
	PeerChat
	PeerChannel
)

// Peer is the publication target. The zero value is the current account.
type Peer struct {
	Kind PeerKind `json:"kind"`
	ID   int64    `json:"id,omitempty"`
}

// SelfPeer returns the peer of the current account.
func SelfPeer() Peer {
	return Peer{Kind: PeerSelf}
}

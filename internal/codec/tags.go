// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

// Wire constants. Values are part of the persisted format and must never
// change.
const (
	draftMagic uint32 = 0xb07e5d7a
	listMarker uint32 = 0x1cb5c415
	tagNull    uint32 = 0x56730bcc
	tagTrue    uint32 = 0x997275b5
	tagFalse   uint32 = 0xbc799737

	tagFilterState uint32 = 0x6a8c1f30
	tagDraftError  uint32 = 0x2c3d1f8e
	tagAudio       uint32 = 0x7b19e2a4
	tagRound       uint32 = 0x4f0d93c6
	tagMediaEntity uint32 = 0x1e2a6b55
)

// Message entity tags.
const (
	tagEntityUnknown     uint32 = 0xbb92ba95
	tagEntityBold        uint32 = 0xbd610bc9
	tagEntityItalic      uint32 = 0x826f8b60
	tagEntityUnderline   uint32 = 0x9c4e7e8b
	tagEntityStrike      uint32 = 0xbf0693d4
	tagEntitySpoiler     uint32 = 0x32ca960f
	tagEntityCode        uint32 = 0x28a20571
	tagEntityPre         uint32 = 0x73924be0
	tagEntityURL         uint32 = 0x6ed02538
	tagEntityTextURL     uint32 = 0x76a6d327
	tagEntityMention     uint32 = 0xfa04579d
	tagEntityMentionName uint32 = 0xdc7b1140
	tagEntityHashtag     uint32 = 0x6f635b0d
	tagEntityCustomEmoji uint32 = 0xc8cf05f8
)

// Privacy rule tags.
const (
	tagPrivacyAllowAll          uint32 = 0x184b35ce
	tagPrivacyAllowContacts     uint32 = 0x0d09e07b
	tagPrivacyAllowCloseFriends uint32 = 0x2f453e49
	tagPrivacyAllowUsers        uint32 = 0x131cc67f
	tagPrivacyDisallowAll       uint32 = 0xd66b66c9
	tagPrivacyDisallowContacts  uint32 = 0x0ba52007
	tagPrivacyDisallowUsers     uint32 = 0x90110467
)

// Sticker reference tags.
const (
	tagDocument      uint32 = 0x1abfb575
	tagDocumentEmpty uint32 = 0x72f0eaae
)

// Peer tags.
const (
	tagPeerSelf    uint32 = 0x7da07ec9
	tagPeerUser    uint32 = 0xdde8a54c
	tagPeerChat    uint32 = 0x35a95cb9
	tagPeerChannel uint32 = 0x27bcbbfc
)

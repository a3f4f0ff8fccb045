// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "github.com/MKhiriev/go-story-drafts/models"

var entityTags = map[models.EntityType]uint32{
	models.EntityUnknown:     tagEntityUnknown,
	models.EntityBold:        tagEntityBold,
	models.EntityItalic:      tagEntityItalic,
	models.EntityUnderline:   tagEntityUnderline,
	models.EntityStrike:      tagEntityStrike,
	models.EntitySpoiler:     tagEntitySpoiler,
	models.EntityCode:        tagEntityCode,
	models.EntityPre:         tagEntityPre,
	models.EntityURL:         tagEntityURL,
	models.EntityTextURL:     tagEntityTextURL,
	models.EntityMention:     tagEntityMention,
	models.EntityMentionName: tagEntityMentionName,
	models.EntityHashtag:     tagEntityHashtag,
	models.EntityCustomEmoji: tagEntityCustomEmoji,
}

var privacyTags = map[models.PrivacyRuleType]uint32{
	models.PrivacyAllowAll:          tagPrivacyAllowAll,
	models.PrivacyAllowContacts:     tagPrivacyAllowContacts,
	models.PrivacyAllowCloseFriends: tagPrivacyAllowCloseFriends,
	models.PrivacyAllowUsers:        tagPrivacyAllowUsers,
	models.PrivacyDisallowAll:       tagPrivacyDisallowAll,
	models.PrivacyDisallowContacts:  tagPrivacyDisallowContacts,
	models.PrivacyDisallowUsers:     tagPrivacyDisallowUsers,
}

var peerTags = map[models.PeerKind]uint32{
	models.PeerSelf:    tagPeerSelf,
	models.PeerUser:    tagPeerUser,
	models.PeerChat:    tagPeerChat,
	models.PeerChannel: tagPeerChannel,
}

var (
	messageEntities = newVariantTable[models.MessageEntity]("message entity")
	privacyRules    = newVariantTable[models.PrivacyRule]("privacy rule")
	stickerRefs     = newVariantTable[models.StickerRef]("sticker")
	peers           = newVariantTable[models.Peer]("peer")
)

func init() {
	for typ, tag := range entityTags {
		messageEntities.register(tag, entityDecoder(typ))
	}
	for typ, tag := range privacyTags {
		privacyRules.register(tag, privacyDecoder(typ))
	}
	for kind, tag := range peerTags {
		peers.register(tag, peerDecoder(kind))
	}

	stickerRefs.register(tagDocument, func(r *Reader) models.StickerRef {
		return models.StickerRef{
			ID:            r.Int64(),
			AccessHash:    r.Int64(),
			FileReference: r.ByteArray(),
		}
	})
	stickerRefs.register(tagDocumentEmpty, func(r *Reader) models.StickerRef {
		return models.StickerRef{Empty: true, ID: r.Int64()}
	})
}

func writeMessageEntity(w *Writer, e models.MessageEntity) {
	tag, ok := entityTags[e.Type]
	if !ok {
		tag = tagEntityUnknown
	}

	w.Uint32(tag)
	w.Int32(e.Offset)
	w.Int32(e.Length)

	switch tag {
	case tagEntityPre:
		w.String(e.Language)
	case tagEntityTextURL:
		w.String(e.URL)
	case tagEntityMentionName:
		w.Int64(e.UserID)
	case tagEntityCustomEmoji:
		w.Int64(e.DocumentID)
	}
}

func entityDecoder(typ models.EntityType) func(r *Reader) models.MessageEntity {
	return func(r *Reader) models.MessageEntity {
		e := models.MessageEntity{
			Type:   typ,
			Offset: r.Int32(),
			Length: r.Int32(),
		}

		switch typ {
		case models.EntityPre:
			e.Language = r.Str()
		case models.EntityTextURL:
			e.URL = r.Str()
		case models.EntityMentionName:
			e.UserID = r.Int64()
		case models.EntityCustomEmoji:
			e.DocumentID = r.Int64()
		}

		return e
	}
}

func writePrivacyRule(w *Writer, p models.PrivacyRule) {
	tag, ok := privacyTags[p.Type]
	if !ok {
		// unknown rules degrade to the most restrictive one
		tag = tagPrivacyDisallowAll
	}

	w.Uint32(tag)
	if tag == tagPrivacyAllowUsers || tag == tagPrivacyDisallowUsers {
		writeList(w, p.UserIDs, (*Writer).Int64)
	}
}

func privacyDecoder(typ models.PrivacyRuleType) func(r *Reader) models.PrivacyRule {
	return func(r *Reader) models.PrivacyRule {
		p := models.PrivacyRule{Type: typ}
		if typ == models.PrivacyAllowUsers || typ == models.PrivacyDisallowUsers {
			p.UserIDs = readList(r, (*Reader).Int64)
		}
		return p
	}
}

func writeMediaEntity(w *Writer, m models.MediaEntity) {
	w.Uint32(tagMediaEntity)
	w.Int32(int32(m.Type))
	w.Int32(m.SubType)
	w.Float32(m.X)
	w.Float32(m.Y)
	w.Float32(m.Width)
	w.Float32(m.Height)
	w.Float32(m.Rotation)
	w.Float32(m.Scale)
	w.String(m.Text)
	w.Int32(m.Color)
	w.Int64(m.DocumentID)
}

func readMediaEntity(r *Reader) models.MediaEntity {
	tag := r.Uint32()
	if r.err != nil {
		return models.MediaEntity{}
	}
	if tag != tagMediaEntity {
		r.fail(errUnknownTag("media entity", tag))
		return models.MediaEntity{}
	}

	return models.MediaEntity{
		Type:       models.MediaEntityType(r.Int32()),
		SubType:    r.Int32(),
		X:          r.Float32(),
		Y:          r.Float32(),
		Width:      r.Float32(),
		Height:     r.Float32(),
		Rotation:   r.Float32(),
		Scale:      r.Float32(),
		Text:       r.Str(),
		Color:      r.Int32(),
		DocumentID: r.Int64(),
	}
}

func writeStickerRef(w *Writer, s models.StickerRef) {
	if s.Empty {
		w.Uint32(tagDocumentEmpty)
		w.Int64(s.ID)
		return
	}

	w.Uint32(tagDocument)
	w.Int64(s.ID)
	w.Int64(s.AccessHash)
	w.ByteArray(s.FileReference)
}

func writePeer(w *Writer, p models.Peer) {
	tag, ok := peerTags[p.Kind]
	if !ok {
		tag = tagPeerSelf
	}

	w.Uint32(tag)
	if tag != tagPeerSelf {
		w.Int64(p.ID)
	}
}

func peerDecoder(kind models.PeerKind) func(r *Reader) models.Peer {
	return func(r *Reader) models.Peer {
		if kind == models.PeerSelf {
			return models.SelfPeer()
		}
		return models.Peer{Kind: kind, ID: r.Int64()}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-drafts/internal/codec"
	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/MKhiriev/go-story-drafts/internal/store"
	"github.com/MKhiriev/go-story-drafts/models"
)

// visibleTypes are the buckets shown in the drafts list.
var visibleTypes = []models.DraftType{models.DraftTypePlain, models.DraftTypeEdit}

// DraftsOption customises a drafts controller.
type DraftsOption func(*draftsController)

// WithClock replaces the wall clock used for draft dates and expiration.
func WithClock(now func() time.Time) DraftsOption {
	return func(c *draftsController) {
		c.now = now
	}
}

// WithIDSource replaces the random draft id generator.
func WithIDSource(newID func() int64) DraftsOption {
	return func(c *draftsController) {
		c.newID = newID
	}
}

// WithTTL sets the lifetime of plain and failed drafts.
func WithTTL(ttl time.Duration) DraftsOption {
	return func(c *draftsController) {
		c.ttl = ttl
	}
}

// WithUploadingSink sets the receiver of failed drafts found on start.
func WithUploadingSink(sink UploadingSink) DraftsOption {
	return func(c *draftsController) {
		c.uploading = sink
	}
}

// draftsController is the default [DraftsService].
//
// The visible list is guarded by mu. Storage tasks are submitted to queue in
// the same order as the in-memory changes they mirror, so the database always
// converges to the list.
type draftsController struct {
	repo      store.DraftRepository
	files     store.MediaFileStorage
	rehomer   *Rehomer
	queue     StorageQueue
	notifier  Notifier
	uploading UploadingSink
	logger    *logger.Logger

	ttl   time.Duration
	now   func() time.Time
	newID func() int64

	mu      sync.Mutex
	drafts  []models.StoryEntry
	loaded  bool
	loading bool
	// generation changes on Cleanup so that a load started before it is discarded
	generation int
	// removed holds ids deleted while a load is running
	removed map[int64]struct{}
}

// NewDraftsController creates the drafts store of one account and schedules
// the restoration of failed drafts.
func NewDraftsController(
	storages *store.Storages,
	queue StorageQueue,
	notifier Notifier,
	log *logger.Logger,
	opts ...DraftsOption,
) DraftsService {
	c := &draftsController{
		repo:     storages.DraftRepository,
		files:    storages.MediaFiles,
		rehomer:  NewRehomer(storages.MediaFiles, log),
		queue:    queue,
		notifier: notifier,
		logger:   log,
		ttl:      DefaultDraftTTL,
		now:      time.Now,
		newID:    randomDraftID,
		removed:  make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.loadFailed()

	return c
}

func randomDraftID() int64 {
	for {
		if id := rand.Int64(); id != 0 {
			return id
		}
	}
}

func (c *draftsController) policy() ExpirationPolicy {
	return ExpirationPolicy{
		TTL:        c.ttl,
		Now:        c.now,
		FileExists: c.fileExists,
	}
}

func (c *draftsController) fileExists(path string) bool {
	if c.files == nil {
		return true
	}
	return c.files.Exists(path)
}

// Load implements [DraftsService].
func (c *draftsController) Load() {
	c.mu.Lock()
	if c.loaded || c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	generation := c.generation
	c.mu.Unlock()

	c.submit("load", func(ctx context.Context) {
		log := logger.FromContext(ctx)

		entries, err := c.readBucket(ctx, visibleTypes...)
		if err != nil {
			log.Err(err).Str("func", "draftsController.Load").Msg("failed to load drafts")
			c.abortLoad(generation)
			return
		}

		expired, ok := c.finishLoad(generation, entries)
		if !ok {
			return
		}
		c.purge(ctx, expired)

		log.Debug().
			Str("func", "draftsController.Load").
			Int("loaded", len(entries)-len(expired)).
			Int("expired", len(expired)).
			Msg("drafts loaded")
		c.notify()
	})
}

// finishLoad publishes the loaded entries and returns the expired ones. Drafts
// appended while loading stay at the head; drafts deleted while loading are
// not brought back.
func (c *draftsController) finishLoad(generation int, loaded []models.StoryEntry) ([]models.StoryEntry, bool) {
	policy := c.policy()

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return nil, false
	}

	var expired []models.StoryEntry
	for _, entry := range loaded {
		if _, gone := c.removed[entry.DraftID]; gone {
			continue
		}
		if c.indexOf(entry.DraftID) >= 0 {
			continue
		}
		if policy.Expired(entry) {
			expired = append(expired, entry)
			continue
		}
		c.drafts = append(c.drafts, entry)
	}

	c.loaded = true
	c.loading = false
	clear(c.removed)

	return expired, true
}

func (c *draftsController) abortLoad(generation int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation == c.generation {
		c.loading = false
		clear(c.removed)
	}
}

// loadFailed hands drafts whose upload failed to the uploading sink.
func (c *draftsController) loadFailed() {
	c.submit("loadFailed", func(ctx context.Context) {
		log := logger.FromContext(ctx)

		entries, err := c.readBucket(ctx, models.DraftTypeFailed)
		if err != nil {
			log.Err(err).Str("func", "draftsController.loadFailed").Msg("failed to load failed drafts")
			return
		}

		policy := c.policy()
		alive := make([]models.StoryEntry, 0, len(entries))
		var expired []models.StoryEntry
		for _, entry := range entries {
			if policy.Expired(entry) {
				expired = append(expired, entry)
				continue
			}
			alive = append(alive, entry)
		}
		c.purge(ctx, expired)

		if len(alive) > 0 && c.uploading != nil {
			c.uploading.Restore(alive)
		}
	})
}

// readBucket decodes the rows of the given buckets. Rows that fail to decode
// are deleted from the database. Runs on the storage queue.
func (c *draftsController) readBucket(ctx context.Context, types ...models.DraftType) ([]models.StoryEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := c.repo.GetDrafts(ctx, types...)
	if err != nil {
		return nil, err
	}

	entries := make([]models.StoryEntry, 0, len(rows))
	var corrupt []int64
	for _, row := range rows {
		record, decodeErr := codec.Decode(row.Data, false)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).
				Str("func", "draftsController.readBucket").
				Int64("draft_id", row.ID).
				Msg("dropping undecodable draft")
			corrupt = append(corrupt, row.ID)
			continue
		}

		entry := ToStoryEntry(record)
		entry.DraftID = row.ID
		entries = append(entries, entry)
	}

	if len(corrupt) > 0 {
		if err = c.repo.DeleteDrafts(ctx, corrupt...); err != nil {
			log.Err(err).
				Str("func", "draftsController.readBucket").
				Int("count", len(corrupt)).
				Msg("failed to delete undecodable drafts")
		}
	}

	return entries, nil
}

// purge releases the files of entries and deletes their rows. Runs on the
// storage queue.
func (c *draftsController) purge(ctx context.Context, entries []models.StoryEntry) {
	if len(entries) == 0 {
		return
	}

	ids := make([]int64, len(entries))
	for i, entry := range entries {
		c.releaseFiles(entry, nil)
		ids[i] = entry.DraftID
	}

	if err := c.repo.DeleteDrafts(ctx, ids...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "draftsController.purge").
			Int("count", len(ids)).
			Msg("failed to delete expired drafts")
	}
}

// Append implements [DraftsService].
func (c *draftsController) Append(entry models.StoryEntry) models.StoryEntry {
	entry = c.prepare(entry)
	entry.DraftID = c.newID()

	c.mu.Lock()
	c.drafts = slices.Insert(c.drafts, 0, entry)
	c.mu.Unlock()

	row := c.toRow(entry)
	c.submit("append", func(ctx context.Context) {
		if err := c.repo.InsertDraft(ctx, row); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "draftsController.Append").
				Int64("draft_id", row.ID).
				Msg("failed to insert draft")
		}
	})
	c.notify()

	return cloneEntry(entry)
}

// Edit implements [DraftsService].
func (c *draftsController) Edit(entry models.StoryEntry) models.StoryEntry {
	entry = c.prepare(entry)
	if entry.DraftID == 0 {
		entry.DraftID = c.newID()
	}

	c.mu.Lock()
	if i := c.indexOf(entry.DraftID); i >= 0 {
		c.drafts = slices.Delete(c.drafts, i, i+1)
	}
	if entry.IsError {
		if c.loading {
			c.removed[entry.DraftID] = struct{}{}
		}
	} else {
		c.drafts = slices.Insert(c.drafts, 0, entry)
	}
	c.mu.Unlock()

	row := c.toRow(entry)
	c.submit("edit", func(ctx context.Context) {
		if err := c.repo.ReplaceDraft(ctx, row); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "draftsController.Edit").
				Int64("draft_id", row.ID).
				Msg("failed to replace draft")
		}
	})
	c.notify()

	return cloneEntry(entry)
}

// SaveForEdit implements [DraftsService].
func (c *draftsController) SaveForEdit(entry models.StoryEntry, peerID int64, remote models.RemoteStory) models.StoryEntry {
	if peerID == 0 {
		peerID = remote.PeerID
	}

	// prior links are matched by story id only; the incoming entry may still
	// reference their files, which then pass to the new draft
	c.remove(c.linked(0, remote.ID), draftFiles(entry))

	entry.IsEdit = true
	entry.EditStoryID = remote.ID
	entry.EditStoryPeerID = peerID
	entry.EditExpireDate = remote.ExpireDate
	entry.EditDocumentID = 0
	entry.EditPhotoID = 0
	switch {
	case remote.Media.Document != nil:
		entry.EditDocumentID = remote.Media.Document.ID
	case remote.Media.Photo != nil:
		entry.EditPhotoID = remote.Media.Photo.ID
	}

	return c.Append(entry)
}

// Delete implements [DraftsService].
func (c *draftsController) Delete(entries ...models.StoryEntry) {
	c.remove(entries, nil)
}

// remove deletes entries and releases their files except those in keep.
func (c *draftsController) remove(entries []models.StoryEntry, keep map[string]struct{}) {
	if len(entries) == 0 {
		return
	}

	ids := make([]int64, 0, len(entries))
	c.mu.Lock()
	for _, entry := range entries {
		if i := c.indexOf(entry.DraftID); i >= 0 {
			c.drafts = slices.Delete(c.drafts, i, i+1)
		}
		if c.loading {
			c.removed[entry.DraftID] = struct{}{}
		}
		ids = append(ids, entry.DraftID)
	}
	c.mu.Unlock()

	for _, entry := range entries {
		c.releaseFiles(entry, keep)
	}

	c.submit("delete", func(ctx context.Context) {
		if err := c.repo.DeleteDrafts(ctx, ids...); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "draftsController.Delete").
				Int("count", len(ids)).
				Msg("failed to delete drafts")
		}
	})
	c.notify()
}

// DeleteExpired implements [DraftsService].
func (c *draftsController) DeleteExpired() []models.StoryEntry {
	policy := c.policy()

	c.mu.Lock()
	var expired []models.StoryEntry
	for _, entry := range c.drafts {
		if policy.Expired(entry) {
			expired = append(expired, cloneEntry(entry))
		}
	}
	c.mu.Unlock()

	c.Delete(expired...)

	return expired
}

// DeleteForEdit implements [DraftsService].
func (c *draftsController) DeleteForEdit(remote models.RemoteStory) {
	c.Delete(c.linked(remote.PeerID, remote.ID)...)
}

// GetForEdit implements [DraftsService].
func (c *draftsController) GetForEdit(peerID int64, remote models.RemoteStory) *models.StoryEntry {
	if peerID == 0 {
		peerID = remote.PeerID
	}

	linked := c.linked(peerID, remote.ID)
	if len(linked) == 0 {
		return nil
	}

	return &linked[0]
}

// Cleanup implements [DraftsService].
func (c *draftsController) Cleanup() {
	c.mu.Lock()
	all := c.drafts
	c.drafts = nil
	c.loaded = false
	c.loading = false
	c.generation++
	clear(c.removed)
	c.mu.Unlock()

	ids := make([]int64, len(all))
	for i, entry := range all {
		c.releaseFiles(entry, nil)
		ids[i] = entry.DraftID
	}

	if len(ids) > 0 {
		c.submit("cleanup", func(ctx context.Context) {
			if err := c.repo.DeleteDrafts(ctx, ids...); err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "draftsController.Cleanup").
					Int("count", len(ids)).
					Msg("failed to delete drafts")
			}
		})
	}
	c.notify()
}

// Find implements [DraftsService].
func (c *draftsController) Find(id int64) (models.StoryEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.StoryEntry{}, ErrDraftNotFound
	}

	return cloneEntry(c.drafts[i]), nil
}

// Drafts implements [DraftsService].
func (c *draftsController) Drafts() []models.StoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.StoryEntry, len(c.drafts))
	for i, entry := range c.drafts {
		out[i] = cloneEntry(entry)
	}

	return out
}

// Loaded implements [DraftsService].
func (c *draftsController) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loaded
}

// prepare copies entry, stamps it as a draft and re-homes its files.
func (c *draftsController) prepare(entry models.StoryEntry) models.StoryEntry {
	entry = cloneEntry(entry)
	entry.IsDraft = true
	entry.DraftDate = c.now()
	c.rehomer.Rehome(&entry)

	return entry
}

func (c *draftsController) linked(peerID int64, storyID int32) []models.StoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []models.StoryEntry
	for _, entry := range c.drafts {
		if entry.LinkedTo(peerID, storyID) {
			out = append(out, cloneEntry(entry))
		}
	}

	return out
}

// indexOf must be called with mu held.
func (c *draftsController) indexOf(id int64) int {
	return slices.IndexFunc(c.drafts, func(e models.StoryEntry) bool {
		return e.DraftID == id
	})
}

// draftFiles returns the set of non-empty file paths referenced by entry.
func draftFiles(entry models.StoryEntry) map[string]struct{} {
	paths := []string{entry.File, entry.PaintFile, entry.PaintEntitiesFile, entry.FilterFile}
	if entry.Round != nil {
		paths = append(paths, entry.Round.Path)
	}

	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

// releaseFiles removes the files exclusively owned by entry, skipping paths
// in keep.
func (c *draftsController) releaseFiles(entry models.StoryEntry, keep map[string]struct{}) {
	if c.files == nil {
		return
	}

	paths := make([]string, 0, 5)
	if entry.FileDeletable {
		paths = append(paths, entry.File)
	}
	for _, p := range []string{entry.PaintFile, entry.PaintEntitiesFile, entry.FilterFile} {
		if c.files.InDir(p) {
			paths = append(paths, p)
		}
	}
	if entry.Round != nil && c.files.InDir(entry.Round.Path) {
		paths = append(paths, entry.Round.Path)
	}

	for _, p := range paths {
		if _, ok := keep[p]; ok {
			continue
		}
		if err := c.files.Remove(p); err != nil {
			c.logger.Err(err).
				Str("func", "draftsController.releaseFiles").
				Int64("draft_id", entry.DraftID).
				Str("path", p).
				Msg("failed to remove draft file")
		}
	}
}

func (c *draftsController) toRow(entry models.StoryEntry) models.DraftRow {
	record := ToRecord(entry)

	return models.DraftRow{
		ID:   record.ID,
		Date: record.Date,
		Data: codec.Encode(record),
		Type: record.Type(),
	}
}

func (c *draftsController) submit(op string, task func(ctx context.Context)) {
	if !c.queue.Submit(task) {
		c.logger.Warn().
			Str("func", "draftsController.submit").
			Str("op", op).
			Msg("storage queue rejected task")
	}
}

func (c *draftsController) notify() {
	if c.notifier != nil {
		c.notifier.DraftsUpdated()
	}
}

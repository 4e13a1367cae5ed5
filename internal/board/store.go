package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyText is returned by Create and Edit when the record text is empty
// after trimming surrounding whitespace.
var ErrEmptyText = errors.New("feedback text must not be empty")

// Store holds the canonical list of feedback records and the view
// configuration (sort mode, category filter, dark mode flag).
//
// Records are kept newest-first: Create prepends, and the stored order is
// never resorted — ordering for display is a view-time concern (see View).
// Every mutation is followed by a write-through snapshot save before the
// call returns; a failed save is surfaced as the mutator's error rather
// than lost silently.
//
// Mutating a record with an unknown id is a silent no-op, not an error.
// This tolerates stale references from the presentation layer (e.g. a
// remove racing a re-render).
type Store struct {
	snapshots SnapshotStore
	clock     Clock
	idgen     IDGenerator
	logger    Logger

	records  []Record
	sortMode SortMode
	filter   map[Category]bool // membership means visible
	darkMode bool
}

// Open creates a Store hydrated from the last-saved snapshot, or with
// defaults (no records, newest-first sort, all categories visible) when no
// snapshot exists yet.
func Open(snapshots SnapshotStore, clock Clock, idgen IDGenerator, logger Logger) (*Store, error) {
	s := &Store{
		snapshots: snapshots,
		clock:     clock,
		idgen:     idgen,
		logger:    logger,
		sortMode:  SortByCreated,
		filter:    fullFilter(),
	}

	data, ok, err := snapshots.Load(SnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if !ok {
		logger.Debug("no snapshot found, starting empty")
		return s, nil
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	s.apply(state)
	logger.Debug("snapshot loaded", "records", len(s.records))
	return s, nil
}

// apply replaces the in-memory state with the given snapshot.
func (s *Store) apply(state State) {
	s.records = append([]Record(nil), state.Records...)
	if state.SortMode.Valid() {
		s.sortMode = state.SortMode
	}
	s.filter = make(map[Category]bool, len(state.CategoryFilter))
	for _, c := range state.CategoryFilter {
		if c.Valid() {
			s.filter[c] = true
		}
	}
	s.darkMode = state.DarkMode
}

// Create adds a new record with the given text and category, generating a
// fresh id and stamping the current time. The record is prepended, so the
// unsorted order is newest-first. Returns the new record's id.
func (s *Store) Create(text string, category Category) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if !category.Valid() {
		return "", fmt.Errorf("invalid category %q", category)
	}

	rec := Record{
		ID:        s.idgen.New(),
		Text:      text,
		Votes:     0,
		Category:  category,
		CreatedAt: s.clock.Now().UnixMilli(),
	}
	s.records = append([]Record{rec}, s.records...)

	if err := s.persist(); err != nil {
		return "", err
	}
	s.logger.Info("record created", "id", rec.ID, "category", category)
	return rec.ID, nil
}

// Remove deletes the record with the given id. Unknown ids are ignored.
func (s *Store) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("remove skipped, unknown id", "id", id)
		return nil
	}
	s.records = append(s.records[:i:i], s.records[i+1:]...)

	if err := s.persist(); err != nil {
		return err
	}
	s.logger.Info("record removed", "id", id)
	return nil
}

// Vote adds +1 (up) or -1 (down) to the record's vote counter. There is no
// floor or ceiling. Unknown ids are ignored.
func (s *Store) Vote(id string, dir Direction) error {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("vote skipped, unknown id", "id", id)
		return nil
	}
	if dir == VoteDown {
		s.records[i].Votes--
	} else {
		s.records[i].Votes++
	}

	if err := s.persist(); err != nil {
		return err
	}
	s.logger.Info("vote recorded", "id", id, "direction", dir, "votes", s.records[i].Votes)
	return nil
}

// Edit replaces the text and category of the record with the given id,
// preserving its id, votes, and creation time. Unknown ids are ignored.
func (s *Store) Edit(id, text string, category Category) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	if !category.Valid() {
		return fmt.Errorf("invalid category %q", category)
	}

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("edit skipped, unknown id", "id", id)
		return nil
	}
	s.records[i].Text = text
	s.records[i].Category = category

	if err := s.persist(); err != nil {
		return err
	}
	s.logger.Info("record edited", "id", id)
	return nil
}

// SetSortMode replaces the view sort mode.
func (s *Store) SetSortMode(mode SortMode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid sort mode %q", mode)
	}
	s.sortMode = mode
	return s.persist()
}

// ToggleCategoryFilter flips the visibility of one category: if it is in
// the filter set it is removed, otherwise added. This is the only filter
// mutator; there is no bulk select-all primitive.
func (s *Store) ToggleCategoryFilter(category Category) error {
	if !category.Valid() {
		return fmt.Errorf("invalid category %q", category)
	}
	if s.filter[category] {
		delete(s.filter, category)
	} else {
		s.filter[category] = true
	}
	return s.persist()
}

// ToggleDarkMode flips the presentation theme flag.
func (s *Store) ToggleDarkMode() error {
	s.darkMode = !s.darkMode
	return s.persist()
}

// ReplaceAll wholesale-replaces the record list with a caller-supplied
// sequence. Validation is the caller's responsibility (see the exchange
// package); the store trusts its input. This is a full replace, not a
// merge: existing records are discarded.
func (s *Store) ReplaceAll(records []Record) error {
	s.records = append([]Record(nil), records...)

	if err := s.persist(); err != nil {
		return err
	}
	s.logger.Info("records replaced", "count", len(records))
	return nil
}

// State returns a deep copy of the full board state. Mutating the returned
// value has no effect on the store.
func (s *Store) State() State {
	return State{
		Records:        append([]Record(nil), s.records...),
		SortMode:       s.sortMode,
		CategoryFilter: s.filterSlice(),
		DarkMode:       s.darkMode,
	}
}

// View returns the sorted, filtered projection of the records for display.
func (s *Store) View() []Record {
	return View(s.records, s.sortMode, s.filter)
}

// DarkMode reports the current theme flag.
func (s *Store) DarkMode() bool { return s.darkMode }

// SortMode reports the current view sort mode.
func (s *Store) SortMode() SortMode { return s.sortMode }

// persist serializes the current state and writes it through to the
// snapshot store.
func (s *Store) persist() error {
	data, err := json.Marshal(s.State())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.snapshots.Save(SnapshotKey, data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// indexOf returns the position of the record with the given id, or -1.
func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// filterSlice renders the filter set as a slice in category universe order.
func (s *Store) filterSlice() []Category {
	out := make([]Category, 0, len(s.filter))
	for _, c := range Categories() {
		if s.filter[c] {
			out = append(out, c)
		}
	}
	return out
}

// fullFilter returns a filter set containing the whole category universe.
func fullFilter() map[Category]bool {
	m := make(map[Category]bool, 4)
	for _, c := range Categories() {
		m[c] = true
	}
	return m
}

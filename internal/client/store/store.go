// Package store holds the client's in-memory entry list as an explicit
// state-transition function over an ordered sequence. The store never
// mutates optimistically, actions are dispatched only after the server
// confirms the corresponding operation.
package store

import (
	"github.com/leondli/diary/internal/domain/entity"
)

// ActionType identifies a state transition
type ActionType string

const (
	ActionReplaceAll ActionType = "replace_all"
	ActionPrependOne ActionType = "prepend_one"
	ActionMergeOne   ActionType = "merge_one"
	ActionRemoveOne  ActionType = "remove_one"
)

// Action describes a single state transition
type Action struct {
	Type    ActionType
	Entries []entity.EntryResponse
	Entry   *entity.EntryResponse
	ID      int64
}

// ReplaceAll builds the action applied after a fetch: the whole
// sequence becomes the server's returned list, in the order given
func ReplaceAll(entries []entity.EntryResponse) Action {
	return Action{Type: ActionReplaceAll, Entries: entries}
}

// PrependOne builds the action applied after a create
func PrependOne(e *entity.EntryResponse) Action {
	return Action{Type: ActionPrependOne, Entry: e}
}

// MergeOne builds the action applied after an update. The matching
// entry is replaced in place, its position is unchanged.
func MergeOne(e *entity.EntryResponse) Action {
	return Action{Type: ActionMergeOne, Entry: e}
}

// RemoveOne builds the action applied after a delete
func RemoveOne(id int64) Action {
	return Action{Type: ActionRemoveOne, ID: id}
}

// Apply returns the sequence produced by applying action to state.
// The input sequence is never mutated.
func Apply(state []entity.EntryResponse, action Action) []entity.EntryResponse {
	switch action.Type {
	case ActionReplaceAll:
		return append([]entity.EntryResponse(nil), action.Entries...)

	case ActionPrependOne:
		next := make([]entity.EntryResponse, 0, len(state)+1)
		next = append(next, *action.Entry)
		return append(next, state...)

	case ActionMergeOne:
		next := append([]entity.EntryResponse(nil), state...)
		for i, e := range next {
			if e.ID == action.Entry.ID {
				next[i] = *action.Entry
			}
		}
		return next

	case ActionRemoveOne:
		next := make([]entity.EntryResponse, 0, len(state))
		for _, e := range state {
			if e.ID != action.ID {
				next = append(next, e)
			}
		}
		return next

	default:
		return state
	}
}

// Store owns the current entry sequence. It is driven by a single
// UI-event stream and needs no locking.
type Store struct {
	entries []entity.EntryResponse
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies an action to the store's state
func (s *Store) Dispatch(action Action) {
	s.entries = Apply(s.entries, action)
}

// Entries returns a copy of the current sequence
func (s *Store) Entries() []entity.EntryResponse {
	return append([]entity.EntryResponse(nil), s.entries...)
}

// Len returns the number of entries currently held
func (s *Store) Len() int {
	return len(s.entries)
}

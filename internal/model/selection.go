package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// SelectionSet is a duplicate-free set of resource identities. It backs the
// staff, test and equipment selections on an appointment: adding an id that
// is already present removes it, so toggling twice restores the set.
type SelectionSet map[uuid.UUID]struct{}

func NewSelectionSet(ids ...uuid.UUID) SelectionSet {
	s := make(SelectionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle adds id if absent and removes it if present, returning the set.
// A nil set is treated as empty.
func (s SelectionSet) Toggle(id uuid.UUID) SelectionSet {
	if s == nil {
		s = make(SelectionSet)
	}
	if _, ok := s[id]; ok {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
	return s
}

func (s SelectionSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s SelectionSet) Len() int {
	return len(s)
}

// IDs returns the members in a stable order.
func (s SelectionSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (s SelectionSet) Clone() SelectionSet {
	c := make(SelectionSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

func (s SelectionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *SelectionSet) UnmarshalJSON(data []byte) error {
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSelectionSet(ids...)
	return nil
}

// Value stores the set as a JSON array.
func (s SelectionSet) Value() (driver.Value, error) {
	b, err := json.Marshal(s.IDs())
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SelectionSet) Scan(src interface{}) error {
	if src == nil {
		*s = NewSelectionSet()
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into SelectionSet", src)
	}
}

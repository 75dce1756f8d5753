package formatter

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

var defaultItems = []Item{TimestampItem, LevelItem, LoggerItem, MessageItem}

// DefaultItems returns the item names used when none are configured
func DefaultItems() []string {
	return itemsToNames(defaultItems)
}

// ItemSelector holds the ordered list of items a layout emits.
//
// The zero value selects DefaultItems. The list is replaced as a whole,
// so a reader concurrent with Set sees either the old or the new list.
type ItemSelector struct {
	items atomic.Pointer[[]Item]
}

// Names returns a copy of the active item names
func (s *ItemSelector) Names() []string {
	return itemsToNames(s.load())
}

// Set validates names and makes them the active list. Nothing changes
// unless every name is known and appears once.
func (s *ItemSelector) Set(names ...string) error {
	items := make([]Item, 0, len(names))
	var seen [numItems]bool
	for _, name := range names {
		it, err := ParseItem(name)
		if err != nil {
			return err
		}
		if seen[it] {
			return errors.Wrapf(ErrDuplicateItem, "item %q", name)
		}
		seen[it] = true
		items = append(items, it)
	}
	s.items.Store(&items)
	return nil
}

// load returns the active list. Callers must not modify it.
func (s *ItemSelector) load() []Item {
	if p := s.items.Load(); p != nil {
		return *p
	}
	return defaultItems
}

func itemsToNames(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.String()
	}
	return names
}

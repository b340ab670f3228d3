// Package contacts holds the assistant bot's address book: validated name
// and phone fields, the in-memory book and its optional persistent store.
package contacts

import (
	"fmt"
	"sort"
	"strings"
)

// Store persists the book between sessions.
type Store interface {
	Put(name, phone string) error
	All() (map[string]string, error)
}

// Contact pairs a name with a phone number.
type Contact struct {
	Name  string
	Phone string
}

// Book maps contact names to phone numbers. When a Store is attached,
// every change is written through before the in-memory state is updated.
type Book struct {
	entries map[string]string
	store   Store
}

// NewBook creates an empty in-memory book.
func NewBook() *Book {
	return &Book{entries: make(map[string]string)}
}

// LoadBook fills a book from the store and keeps writing changes through it.
func LoadBook(store Store) (*Book, error) {
	entries, err := store.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return &Book{entries: entries, store: store}, nil
}

// Set stores a phone number under a name.
func (b *Book) Set(name Name, phone Phone) error {
	if b.store != nil {
		if err := b.store.Put(string(name), string(phone)); err != nil {
			return fmt.Errorf("failed to persist contact: %w", err)
		}
	}
	b.entries[string(name)] = string(phone)
	return nil
}

// Get returns the phone number stored under the exact name.
func (b *Book) Get(name string) (string, bool) {
	phone, ok := b.entries[name]
	return phone, ok
}

// FindName returns the stored name equal to the given one, preferring an
// exact match and falling back to a case-insensitive one.
func (b *Book) FindName(name string) (string, bool) {
	if _, ok := b.entries[name]; ok {
		return name, true
	}
	for existing := range b.entries {
		if strings.EqualFold(existing, name) {
			return existing, true
		}
	}
	return "", false
}

// Search returns contacts whose name contains the term, case-insensitively,
// sorted by name.
func (b *Book) Search(term string) []Contact {
	term = strings.ToLower(term)
	var matches []Contact
	for name, phone := range b.entries {
		if strings.Contains(strings.ToLower(name), term) {
			matches = append(matches, Contact{Name: name, Phone: phone})
		}
	}
	sortContacts(matches)
	return matches
}

// All returns every contact, sorted by name.
func (b *Book) All() []Contact {
	all := make([]Contact, 0, len(b.entries))
	for name, phone := range b.entries {
		all = append(all, Contact{Name: name, Phone: phone})
	}
	sortContacts(all)
	return all
}

// Len returns the number of stored contacts.
func (b *Book) Len() int {
	return len(b.entries)
}

func sortContacts(list []Contact) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}

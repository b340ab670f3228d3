package contacts

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Jime", false},
		{"minimum length", "Al", false},
		{"too short", "A", true},
		{"too long", strings.Repeat("x", 31), true},
		{"empty", "", true},
		{"unicode counted by runes", "Олена", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !IsValidation(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ten digits", "0501234356", false},
		{"nine digits", "123456789", false},
		{"fifteen digits", "123456789012345", false},
		{"with plus", "+380501234356", false},
		{"too short", "12345678", true},
		{"too long", "1234567890123456", true},
		{"letters", "05012343ab", true},
		{"plus in middle", "0501+234356", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhone(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPhone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func mustSet(t *testing.T, b *Book, name, phone string) {
	t.Helper()
	if err := b.Set(Name(name), Phone(phone)); err != nil {
		t.Fatalf("Set(%s, %s) failed: %v", name, phone, err)
	}
}

func TestBookSetAndGet(t *testing.T) {
	b := NewBook()
	mustSet(t, b, "Jime", "0501234356")

	phone, ok := b.Get("Jime")
	if !ok || phone != "0501234356" {
		t.Errorf("Get(Jime) = %q, %v", phone, ok)
	}

	// Overwrite
	mustSet(t, b, "Jime", "0509999999")
	phone, _ = b.Get("Jime")
	if phone != "0509999999" {
		t.Errorf("expected updated phone, got %q", phone)
	}
	if b.Len() != 1 {
		t.Errorf("expected 1 contact, got %d", b.Len())
	}
}

func TestBookFindName(t *testing.T) {
	b := NewBook()
	mustSet(t, b, "Jime", "0501234356")

	tests := []struct {
		query     string
		wantName  string
		wantFound bool
	}{
		{"Jime", "Jime", true},
		{"jime", "Jime", true},
		{"JIME", "Jime", true},
		{"Bob", "", false},
	}
	for _, tt := range tests {
		name, found := b.FindName(tt.query)
		if name != tt.wantName || found != tt.wantFound {
			t.Errorf("FindName(%q) = %q, %v; want %q, %v", tt.query, name, found, tt.wantName, tt.wantFound)
		}
	}
}

func TestBookSearch(t *testing.T) {
	b := NewBook()
	mustSet(t, b, "Jime", "0501234356")
	mustSet(t, b, "Jimmy", "0507654321")
	mustSet(t, b, "Anna", "0501112233")

	got := b.Search("jim")
	expected := []Contact{
		{Name: "Jime", Phone: "0501234356"},
		{Name: "Jimmy", Phone: "0507654321"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}

	if got := b.Search("zzz"); got != nil {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestBookAllSorted(t *testing.T) {
	b := NewBook()
	mustSet(t, b, "Zed", "0501111111")
	mustSet(t, b, "Anna", "0502222222")

	got := b.All()
	expected := []Contact{
		{Name: "Anna", Phone: "0502222222"},
		{Name: "Zed", Phone: "0501111111"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

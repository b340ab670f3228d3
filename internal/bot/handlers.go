// Package bot implements the contacts assistant: command handlers, their
// validators, two interchangeable dispatchers and the read-eval-print loop.
package bot

import (
	"fmt"
	"strings"

	"drills/internal/contacts"
)

// Handler executes a command against the book and returns the reply.
// Arguments arrive pre-checked by the command's validators.
type Handler func(args []string, book *contacts.Book) (string, error)

// AddContact adds a new contact with username and phone number.
func AddContact(args []string, book *contacts.Book) (string, error) {
	name, err := contacts.NewName(args[0])
	if err != nil {
		return "", err
	}
	phone, err := contacts.NewPhone(args[1])
	if err != nil {
		return "", err
	}
	if err := book.Set(name, phone); err != nil {
		return "", err
	}
	return "Contact added.", nil
}

// ChangeContact updates the phone number of an existing contact.
func ChangeContact(args []string, book *contacts.Book) (string, error) {
	phone, err := contacts.NewPhone(args[1])
	if err != nil {
		return "", err
	}
	if err := book.Set(contacts.Name(args[0]), phone); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

// ShowPhone displays the phone numbers of contacts matching the search
// term, case-insensitively and with partial matches allowed.
func ShowPhone(args []string, book *contacts.Book) (string, error) {
	matches := book.Search(args[0])
	if len(matches) == 0 {
		return "No matches found.", nil
	}

	return fmt.Sprintf("Found %d match%s:\n%s",
		len(matches), plural(len(matches), "es"), formatContacts(matches)), nil
}

// ShowAll returns every saved contact with its phone number.
func ShowAll(_ []string, book *contacts.Book) (string, error) {
	all := book.All()
	return fmt.Sprintf("You have %d contact%s:\n%s",
		len(all), plural(len(all), "s"), formatContacts(all)), nil
}

// Hello greets the user.
func Hello(_ []string, _ *contacts.Book) (string, error) {
	return HelloMessage, nil
}

// Help lists the available commands.
func Help(_ []string, _ *contacts.Book) (string, error) {
	return MenuHelp, nil
}

// formatContacts aligns names into a column so phone numbers line up.
func formatContacts(list []contacts.Contact) string {
	maxLen := 0
	for _, c := range list {
		maxLen = max(maxLen, len(c.Name))
	}

	lines := make([]string, 0, len(list))
	for _, c := range list {
		lines = append(lines, fmt.Sprintf("  %-*s : %s", maxLen, c.Name, c.Phone))
	}
	return strings.Join(lines, "\n")
}

func plural(n int, suffix string) string {
	if n == 1 {
		return ""
	}
	return suffix
}

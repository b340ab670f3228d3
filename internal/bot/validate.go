package bot

import (
	"strings"

	"drills/internal/contacts"
)

// Validator checks command arguments against the current book before the
// handler runs. Failures are ValidationError values with messages meant
// for the user.
type Validator func(args []string, book *contacts.Book) error

func requireTwoArguments(args []string, _ *contacts.Book) error {
	if len(args) != 2 || strings.TrimSpace(args[0]) == "" || strings.TrimSpace(args[1]) == "" {
		return contacts.Validationf("You must provide two arguments, username and a phone number.")
	}
	return nil
}

func requireUsernameArgument(args []string, _ *contacts.Book) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return contacts.Validationf("You must provide username as a single argument.")
	}
	return nil
}

func requireContactAbsent(args []string, book *contacts.Book) error {
	username := args[0]
	stored, found := book.FindName(username)
	if !found {
		return nil
	}
	if stored == username {
		return contacts.Validationf("Contact with username '%s' already exists.", username)
	}
	return contacts.Validationf(
		"Contact with username '%s' already exists, but under a different name: '%s'.",
		username, stored)
}

func requireContactExists(args []string, book *contacts.Book) error {
	username := args[0]
	stored, found := book.FindName(username)
	if !found {
		return contacts.Validationf("Contact '%s' not found.", username)
	}
	if stored != username {
		return contacts.Validationf(
			"Contact '%s' not found, but a contact exists under '%s'. Did you mean '%s'?",
			username, stored, stored)
	}
	return nil
}

func requireBookNotEmpty(_ []string, book *contacts.Book) error {
	if book.Len() == 0 {
		return contacts.Validationf("You don't have any contacts yet, but you can add one anytime.")
	}
	return nil
}

func requirePhoneChanged(args []string, book *contacts.Book) error {
	username, phone := args[0], args[1]
	if current, ok := book.Get(username); ok && current == phone {
		return contacts.Validationf("Contact '%s' has this phone number already.", username)
	}
	return nil
}

func requireValidName(args []string, _ *contacts.Book) error {
	_, err := contacts.NewName(args[0])
	return err
}

func requireValidPhone(args []string, _ *contacts.Book) error {
	_, err := contacts.NewPhone(args[1])
	return err
}

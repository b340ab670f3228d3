package bot

import (
	"fmt"

	"drills/internal/contacts"
)

// Command is a wrapped handler that always produces a user-facing reply.
type Command func(args []string, book *contacts.Book) string

// Wrap combines a handler with its validators. A validation failure becomes
// the reply string instead of ending the session; anything else is reported
// with an Error prefix.
func Wrap(h Handler, validators ...Validator) Command {
	return func(args []string, book *contacts.Book) string {
		for _, validate := range validators {
			if err := validate(args, book); err != nil {
				if contacts.IsValidation(err) {
					return err.Error()
				}
				return fmt.Sprintf("Error: %v", err)
			}
		}

		reply, err := h(args, book)
		if err != nil {
			if contacts.IsValidation(err) {
				return err.Error()
			}
			return fmt.Sprintf("Error: %v", err)
		}
		return reply
	}
}

// Dispatcher resolves a command keyword to a reply. The boolean reports
// whether the keyword was recognized.
type Dispatcher interface {
	Dispatch(command string, args []string, book *contacts.Book) (string, bool)
}

// Mode selects the dispatch implementation.
type Mode string

const (
	// ModeTable dispatches through a map keyed by command name
	ModeTable Mode = "table"
	// ModeSwitch dispatches through an explicit switch statement
	ModeSwitch Mode = "switch"
)

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTable, ModeSwitch:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid dispatch mode %q (expected %q or %q)", s, ModeTable, ModeSwitch)
	}
}

// NewDispatcher creates the dispatcher for the given mode.
func NewDispatcher(mode Mode) Dispatcher {
	if mode == ModeSwitch {
		return switchDispatcher{}
	}
	return newTableDispatcher()
}

var (
	addCommand = Wrap(AddContact,
		requireTwoArguments, requireValidName, requireValidPhone, requireContactAbsent)
	changeCommand = Wrap(ChangeContact,
		requireTwoArguments, requireContactExists, requireValidPhone, requirePhoneChanged)
	phoneCommand = Wrap(ShowPhone, requireUsernameArgument, requireBookNotEmpty)
	allCommand   = Wrap(ShowAll, requireBookNotEmpty)
	helloCommand = Wrap(Hello)
	helpCommand  = Wrap(Help)
)

// tableDispatcher keeps commands in a map keyed by keyword.
type tableDispatcher struct {
	commands map[string]Command
}

func newTableDispatcher() tableDispatcher {
	return tableDispatcher{commands: map[string]Command{
		"add":    addCommand,
		"change": changeCommand,
		"phone":  phoneCommand,
		"all":    allCommand,
		"hello":  helloCommand,
		"help":   helpCommand,
	}}
}

func (d tableDispatcher) Dispatch(command string, args []string, book *contacts.Book) (string, bool) {
	cmd, ok := d.commands[command]
	if !ok {
		return "", false
	}
	return cmd(args, book), true
}

// switchDispatcher resolves commands with a switch statement. It must stay
// in behavioral lockstep with the table dispatcher.
type switchDispatcher struct{}

func (switchDispatcher) Dispatch(command string, args []string, book *contacts.Book) (string, bool) {
	switch command {
	case "add":
		return addCommand(args, book), true
	case "change":
		return changeCommand(args, book), true
	case "phone":
		return phoneCommand(args, book), true
	case "all":
		return allCommand(args, book), true
	case "hello":
		return helloCommand(args, book), true
	case "help":
		return helpCommand(args, book), true
	default:
		return "", false
	}
}

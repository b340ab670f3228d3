package bot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"drills/internal/contacts"
)

// REPL runs the interactive assistant loop.
type REPL struct {
	In         io.Reader
	Out        io.Writer
	Book       *contacts.Book
	Dispatcher Dispatcher

	// Interactive controls whether prompts are printed; disabled when
	// input is piped in
	Interactive bool
}

// Run reads commands until exit/close or end of input.
func (r *REPL) Run() error {
	fmt.Fprintln(r.Out, WelcomeTitle)
	fmt.Fprintln(r.Out, WelcomeSubtitle)
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, MenuHelp)

	scanner := bufio.NewScanner(r.In)
	for {
		if r.Interactive {
			fmt.Fprintf(r.Out, "\n%s: ", InputPrompt)
		}
		if !scanner.Scan() {
			// End of input behaves like exit
			fmt.Fprintln(r.Out, ExitMessage)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprintln(r.Out, InvalidEmptyCommandMessage)
			continue
		}

		command := strings.ToLower(fields[0])
		args := fields[1:]

		if command == "exit" || command == "close" {
			fmt.Fprintln(r.Out, ExitMessage)
			return nil
		}

		if reply, ok := r.Dispatcher.Dispatch(command, args, r.Book); ok {
			fmt.Fprintln(r.Out, reply)
		} else {
			fmt.Fprintf(r.Out, "%s, %s\n", InvalidCommandMessage, HelpAwareTip)
		}
	}
}

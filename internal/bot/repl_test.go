package bot

import (
	"bytes"
	"strings"
	"testing"

	"drills/internal/contacts"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	repl := &REPL{
		In:         strings.NewReader(input),
		Out:        &out,
		Book:       contacts.NewBook(),
		Dispatcher: NewDispatcher(ModeTable),
	}
	if err := repl.Run(); err != nil {
		t.Fatalf("REPL failed: %v", err)
	}
	return out.String()
}

func TestREPLSession(t *testing.T) {
	out := runSession(t, "hello\nadd Jime 0501234356\nphone Jime\nexit\n")

	for _, want := range []string{
		WelcomeTitle,
		HelloMessage,
		"Contact added.",
		"0501234356",
		ExitMessage,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestREPLCloseAlias(t *testing.T) {
	out := runSession(t, "close\n")
	if !strings.Contains(out, ExitMessage) {
		t.Errorf("close did not exit:\n%s", out)
	}
}

func TestREPLEmptyAndUnknownCommands(t *testing.T) {
	out := runSession(t, "\ndance\nexit\n")

	if !strings.Contains(out, InvalidEmptyCommandMessage) {
		t.Errorf("missing empty command notice:\n%s", out)
	}
	if !strings.Contains(out, InvalidCommandMessage+", "+HelpAwareTip) {
		t.Errorf("missing unknown command notice:\n%s", out)
	}
}

func TestREPLUppercaseCommand(t *testing.T) {
	out := runSession(t, "HELLO\nExit\n")
	if !strings.Contains(out, HelloMessage) {
		t.Errorf("uppercase command not recognized:\n%s", out)
	}
	if !strings.Contains(out, ExitMessage) {
		t.Errorf("mixed-case exit not recognized:\n%s", out)
	}
}

func TestREPLEndOfInput(t *testing.T) {
	// Input ending without exit still says goodbye
	out := runSession(t, "hello\n")
	if !strings.Contains(out, ExitMessage) {
		t.Errorf("EOF did not end the session cleanly:\n%s", out)
	}
}

func TestREPLPromptOnlyWhenInteractive(t *testing.T) {
	var out bytes.Buffer
	repl := &REPL{
		In:          strings.NewReader("exit\n"),
		Out:         &out,
		Book:        contacts.NewBook(),
		Dispatcher:  NewDispatcher(ModeTable),
		Interactive: true,
	}
	if err := repl.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), InputPrompt) {
		t.Error("interactive session should print the prompt")
	}

	if strings.Contains(runSession(t, "exit\n"), InputPrompt) {
		t.Error("piped session should not print the prompt")
	}
}

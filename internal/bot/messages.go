package bot

// User-facing strings for the assistant bot.
const (
	WelcomeTitle    = "Welcome to the assistant bot!"
	WelcomeSubtitle = "Here you have the list of available options for you"

	MenuHelp = `hello                         - Greet the user
add <username> <phone>        - Add a new contact
change <username> <new_phone> - Update contact's phone number
phone <username>              - Show contact's phone number
all                           - Display all contacts
help                          - Show available commands
exit (or close)               - Exit the app`

	HelloMessage = "How can I help you?"

	InvalidCommandMessage      = "Invalid command"
	InvalidEmptyCommandMessage = "You entered an empty command. Please try again"

	HelpAwareTip = "type 'help' for the available list of commands"
	InputPrompt  = "Enter a command (or " + HelpAwareTip + ")"

	ExitMessage = "Good bye!"
)

package cmd

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"drills/internal/bot"
	"drills/internal/config"
	"drills/internal/contacts"
	"drills/internal/log"
)

var (
	botDispatchMode string
	botStorePath    string
	botMemory       bool
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the interactive contacts assistant",
	Long: `Bot starts an interactive assistant that manages phone contacts.

Commands: hello, add, change, phone, all, help, exit (or close).
Contacts persist between sessions in a small database file; use --memory
for a throwaway session.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		setupLogging(cfg)

		mode, err := bot.ParseMode(botDispatchMode)
		if err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}

		book, cleanup, err := openBook(cfg)
		if err != nil {
			log.Error("failed to open contacts store", "error", err.Error())
			os.Exit(1)
		}
		defer cleanup()

		repl := &bot.REPL{
			In:          os.Stdin,
			Out:         os.Stdout,
			Book:        book,
			Dispatcher:  bot.NewDispatcher(mode),
			Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		}
		if err := repl.Run(); err != nil {
			log.Error("session failed", "error", err.Error())
			os.Exit(2)
		}
	},
}

// openBook builds the contact book, persistent unless --memory is set.
func openBook(cfg *config.Config) (*contacts.Book, func(), error) {
	if botMemory {
		return contacts.NewBook(), func() {}, nil
	}

	path, err := resolveStorePath(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := contacts.OpenBoltStore(path)
	if err != nil {
		return nil, nil, err
	}

	book, err := contacts.LoadBook(store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	log.Debug("contacts store opened", "path", path, "contacts", book.Len())
	return book, func() { store.Close() }, nil
}

// resolveStorePath picks the store location: flag, then drills.toml, then
// a default under the user config directory.
func resolveStorePath(cfg *config.Config) (string, error) {
	if botStorePath != "" {
		return botStorePath, nil
	}
	if cfg.Store != "" {
		return cfg.Store, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "drills", "contacts.db"), nil
}

func init() {
	botCmd.Flags().StringVar(&botDispatchMode, "dispatch", string(bot.ModeTable), "command dispatch mode (table or switch)")
	botCmd.Flags().StringVar(&botStorePath, "store", "", "path to the contacts database")
	botCmd.Flags().BoolVar(&botMemory, "memory", false, "keep contacts in memory only")
	rootCmd.AddCommand(botCmd)
}

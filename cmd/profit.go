package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"drills/internal/log"
	"drills/internal/profit"
)

// sampleText is the built-in demonstration input.
const sampleText = "The total income of the employee consists of several " +
	"parts: 1000.01 as base income, supplemented by " +
	"additional receipts of 27.45 and 324.00 dollars."

var profitCmd = &cobra.Command{
	Use:   "profit [file]",
	Short: "Sum all numeric amounts found in a text",
	Long: `Profit extracts every number from a text and reports the total.

Without an argument it runs on a built-in sample text. Pass a file path to
analyze a file, or '-' to read from standard input.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(loadConfig())

		text := sampleText
		if len(args) > 0 {
			data, err := readInput(args[0])
			if err != nil {
				log.Error("failed to read input", "error", err.Error())
				os.Exit(1)
			}
			text = string(data)
		}

		total := profit.Sum(text, profit.Numbers)
		fmt.Printf("Total income: %v\n", total)
	},
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func init() {
	rootCmd.AddCommand(profitCmd)
}

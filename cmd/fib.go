package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"drills/internal/fib"
	"drills/internal/log"
)

var fibNoCache bool

var fibCmd = &cobra.Command{
	Use:   "fib [n]",
	Short: "Compute the n-th Fibonacci number",
	Long: `Fib computes the n-th Fibonacci number with a closure that memoizes
intermediate results, so large positions stay fast.

Without an argument it prints the classic examples fib(10) and fib(15).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(loadConfig())

		fibonacci := fib.CachingFibonacci()
		if fibNoCache {
			fibonacci = fib.PlainFibonacci()
		}

		if len(args) == 0 {
			fmt.Println("No argument provided. Showing default examples:")
			for _, n := range []int{10, 15} {
				v, err := fibonacci(n)
				if err != nil {
					log.Error("computation failed", "error", err.Error())
					os.Exit(2)
				}
				fmt.Println(v)
			}
			return
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			log.Error("provided argument is not a valid integer", "argument", args[0])
			os.Exit(1)
		}

		v, err := fibonacci(n)
		if err != nil {
			log.Error(err.Error())
			os.Exit(2)
		}
		fmt.Println(v)
	},
}

func init() {
	fibCmd.Flags().BoolVar(&fibNoCache, "no-cache", false, "disable memoization (slow, for comparison)")
	rootCmd.AddCommand(fibCmd)
}

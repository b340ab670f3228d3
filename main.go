package main

import "drills/cmd"

func main() {
	cmd.Execute()
}

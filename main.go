package main

import "github.com/they4kman/minesweepah/cmd"

func main() {
	cmd.Execute()
}

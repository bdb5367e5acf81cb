package main

import "github.com/they4kman/hexxagon/cmd"

func main() {
	cmd.Execute()
}

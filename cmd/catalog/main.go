package main

import "github.com/marshallshelly/catalog/cmd/catalog/commands"

func main() {
	commands.Execute()
}

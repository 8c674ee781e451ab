package main

import "github.com/agentic-research/skim/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/greencode4523/applyctl/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/NoonWatt/solarscan-cli/cmd"

func main() {
	cmd.Execute()
}

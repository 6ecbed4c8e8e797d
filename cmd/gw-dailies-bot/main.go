package main

import "github.com/pfrederiksen/gw-dailies/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/pulsedash/pulsedash-go/internal/cli"

func main() {
	cli.Execute()
}

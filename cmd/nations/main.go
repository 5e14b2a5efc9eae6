package main

import "github.com/andrescamacho/nations-go/internal/adapters/cli"

func main() {
	cli.Execute()
}

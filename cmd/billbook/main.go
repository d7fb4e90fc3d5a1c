package main

import "billbook/internal/adapters/cli"

func main() {
	cli.Execute()
}

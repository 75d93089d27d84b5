package main

import (
	"rackline/internal/cli"
)

func main() {
	cli.Execute()
}

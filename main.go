package main

import "uvctl/internal/cli"

func main() {
	cli.Execute()
}

package main

import "buildgraph/internal/cli"

func main() {
	cli.Execute()
}

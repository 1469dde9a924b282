package main

import "steplog/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/sunangle/millennium-calendar-go/internal/cli"

func main() {
	cli.Execute()
}

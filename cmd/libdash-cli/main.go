package main

import (
	"libdash/cmd/libdash-cli/cmd"
)

func main() {
	cmd.Execute()
}

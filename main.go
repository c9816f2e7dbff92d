package main

import (
	"os"

	"github.com/agentkit-io/agentkit/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}

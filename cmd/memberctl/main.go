package main

import (
	"os"

	"github.com/deppfellow/member-directory/cmd/memberctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

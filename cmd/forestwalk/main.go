package main

import (
	"os"

	"github.com/gghosh95/quadforest/cmd/forestwalk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

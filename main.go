package main

import (
	"os"

	"github.com/ankitadas/tutorbuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

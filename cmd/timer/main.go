package main

import (
	"log"

	"github.com/NoNaeAbC/timer/cmd/timer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

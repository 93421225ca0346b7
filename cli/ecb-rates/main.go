package main

import (
	"context"
	"log"

	"github.com/malusev998/ecb-rates/cli/cmd"
)

func main() {
	config := cmd.Config{Ctx: context.Background()}

	if err := cmd.Execute(&config); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

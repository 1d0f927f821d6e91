package main

import (
	"fmt"
	"log"

	"github.com/stpnv0/ClubCourt/internal/app"
	"github.com/stpnv0/ClubCourt/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.MustLoad()

	clubcourt, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = clubcourt.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	return nil
}

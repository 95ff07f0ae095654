package main

import (
	"fmt"
	"log/slog"
	"os"

	"departureboard.org/internal/appconf"
)

func main() {
	if err := appconf.LoadDotenv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		slog.Error("departures failed", "error", err)
		os.Exit(1)
	}
}

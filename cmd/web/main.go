package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"breachforge/internal/catalog"
	"breachforge/internal/rng"
	"breachforge/internal/web"
)

func main() {
	cfg, err := web.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	cards := flag.String("cards", cfg.CardsFile, "path to card list YAML (default: built-in catalog)")
	basics := flag.String("basics", cfg.BasicsFile, "path to nemesis basic list YAML (default: built-in catalog)")
	flag.Parse()

	var store *catalog.Store
	if *cards != "" || *basics != "" {
		store, err = catalog.LoadStore(*cards, *basics)
	} else {
		store, err = catalog.DefaultStore()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv := web.NewServer(store, rng.NewTime())

	log.Printf("breachforge web UI listening on %s", *addr)
	if err := srv.ListenAndServe(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"breachforge/internal/catalog"
	bfmcp "breachforge/internal/mcp"
	"breachforge/internal/rng"
)

func main() {
	cards := flag.String("cards", "", "path to card list YAML (default: built-in catalog)")
	basics := flag.String("basics", "", "path to nemesis basic list YAML (default: built-in catalog)")
	flag.Parse()

	var (
		store *catalog.Store
		err   error
	)
	if *cards != "" || *basics != "" {
		store, err = catalog.LoadStore(*cards, *basics)
	} else {
		store, err = catalog.DefaultStore()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bfmcp.Setup(store, rng.NewTime())

	s := server.NewMCPServer("breachforge", "1.0.0")
	bfmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

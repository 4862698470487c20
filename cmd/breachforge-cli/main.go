package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"breachforge/internal/catalog"
	genlog "breachforge/internal/log"
	"breachforge/internal/nemesis"
	"breachforge/internal/rng"
	"breachforge/internal/supply"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "supply":
		runSupply(os.Args[2:])
	case "basics":
		runBasics(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  breachforge supply [--sets S1,S2] [--abilities A1,A2] [--seed N] [-v]")
	fmt.Println("  breachforge basics [--players N] [--sets S1,S2] [--seed N] [-v]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  supply  Generate a randomized 9-card market supply")
	fmt.Println("  basics  Generate the nemesis basic-card deck for a game")
	fmt.Println()
	fmt.Println("Catalog flags (both commands):")
	fmt.Println("  --cards FILE --basics-file FILE   use catalog files instead of the built-in data")
}

// catalogFlags registers the shared catalog/randomness flags.
func catalogFlags(fs *flag.FlagSet) (cards, basics *string, seed *int64, verbose *bool) {
	cards = fs.String("cards", "", "path to card list YAML (default: built-in catalog)")
	basics = fs.String("basics-file", "", "path to nemesis basic list YAML (default: built-in catalog)")
	seed = fs.Int64("seed", 0, "RNG seed (0 for random)")
	verbose = fs.Bool("v", false, "print the generation event log")
	return
}

func loadStore(cardsPath, basicsPath string) *catalog.Store {
	var (
		store *catalog.Store
		err   error
	)
	if cardsPath != "" || basicsPath != "" {
		store, err = catalog.LoadStore(cardsPath, basicsPath)
	} else {
		store, err = catalog.DefaultStore()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

func newSource(seed int64) rng.Source {
	if seed != 0 {
		return rng.New(seed)
	}
	return rng.NewTime()
}

func newLogger(verbose bool) genlog.EventLogger {
	if verbose {
		return genlog.NewTextLogger(os.Stderr)
	}
	return genlog.NewMemoryLogger()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runSupply(args []string) {
	fs := flag.NewFlagSet("supply", flag.ExitOnError)
	sets := fs.String("sets", "all", "comma-separated card sets to draw from")
	abilitiesArg := fs.String("abilities", "", "comma-separated ability ids the supply must include if possible")
	cards, basics, seed, verbose := catalogFlags(fs)
	fs.Parse(args)

	var abilities []catalog.Ability
	for _, id := range splitList(*abilitiesArg) {
		a := catalog.Ability(id)
		if !a.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown ability %q\n", id)
			fmt.Fprintf(os.Stderr, "Valid abilities:\n")
			for _, known := range catalog.Abilities() {
				fmt.Fprintf(os.Stderr, "  %-22s %s\n", known, known.Label())
			}
			os.Exit(1)
		}
		abilities = append(abilities, a)
	}

	store := loadStore(*cards, *basics)
	assembler := supply.NewAssembler(store, newSource(*seed), newLogger(*verbose))

	result, err := assembler.Generate(catalog.SetFilter(splitList(*sets)), abilities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Supply (template set %d)\n", result.TemplateSet)
	for i, c := range result.Cards {
		fmt.Printf("  %d. %-24s %-6s cost %d  [%s]\n", i+1, c.Name, c.Type, c.Cost, c.Set)
	}
	if n := catalog.SupplySize - len(result.Cards); n > 0 {
		fmt.Printf("Warning: %d slot(s) had no eligible card.\n", n)
	}
}

func runBasics(args []string) {
	fs := flag.NewFlagSet("basics", flag.ExitOnError)
	players := fs.Int("players", 2, "player count (1-4)")
	sets := fs.String("sets", "all", "comma-separated card sets to draw from")
	cards, basics, seed, verbose := catalogFlags(fs)
	fs.Parse(args)

	store := loadStore(*cards, *basics)
	assembler := nemesis.NewAssembler(store, newSource(*seed), newLogger(*verbose))

	result, err := assembler.Generate(catalog.SetFilter(splitList(*sets)), *players)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dist := result.Distribution
	fmt.Printf("Nemesis basic deck for %d player(s) (tiers %d/%d/%d)\n",
		*players, dist.Tier1, dist.Tier2, dist.Tier3)
	for i, c := range result.Cards {
		hp := ""
		if c.HP > 0 {
			hp = fmt.Sprintf("  HP %d", c.HP)
		}
		fmt.Printf("  %2d. %-24s %-7s tier %d%s  [%s]\n", i+1, c.Name, c.Type, c.Tier, hp, c.Set)
	}
}

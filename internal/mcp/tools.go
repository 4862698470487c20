package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"breachforge/internal/catalog"
	"breachforge/internal/history"
	genlog "breachforge/internal/log"
	"breachforge/internal/nemesis"
	"breachforge/internal/rng"
	"breachforge/internal/supply"
)

// Package-level wiring, set by main before the server starts. The
// stdio process serves one session at a time.
var (
	activeStore   *catalog.Store
	activeHistory *history.History
	activeSource  rng.Source
)

// Setup wires the catalog store used by the tool handlers.
func Setup(store *catalog.Store, src rng.Source) {
	activeStore = store
	activeHistory = history.New()
	if src == nil {
		src = rng.NewTime()
	}
	activeSource = src
}

// RegisterTools adds all generator tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(generateSupplyTool(), handleGenerateSupply)
	s.AddTool(generateBasicDeckTool(), handleGenerateBasicDeck)
	s.AddTool(listCatalogTool(), handleListCatalog)
	s.AddTool(getHistoryTool(), handleGetHistory)
}

// --- Tool definitions ---

func generateSupplyTool() mcp.Tool {
	return mcp.NewTool("generate_supply",
		mcp.WithDescription("Generate a randomized 9-card market supply from one of the six published "+
			"template layouts. Returns the selected cards, the template set used, and the generation "+
			"event log. Fewer than 9 cards means some slots had no eligible card."),
		mcp.WithString("card_sets", mcp.Description("Comma-separated card set names to draw from (e.g. 'Base,War Eternal'), or 'all'. Defaults to all sets.")),
		mcp.WithString("abilities", mcp.Description("Comma-separated ability identifiers the supply must include if possible (e.g. 'draw_card,gain_charge'). See list_catalog for valid identifiers.")),
	)
}

func generateBasicDeckTool() mcp.Tool {
	return mcp.NewTool("generate_basic_deck",
		mcp.WithDescription("Generate the shuffled nemesis basic-card deck for a game, sized by player count. "+
			"Returns the shuffled cards and the tier distribution rule applied."),
		mcp.WithNumber("players", mcp.Required(), mcp.Description("Player count (1-4)")),
		mcp.WithString("card_sets", mcp.Description("Comma-separated card set names to draw from, or 'all'. Defaults to all sets.")),
	)
}

func listCatalogTool() mcp.Tool {
	return mcp.NewTool("list_catalog",
		mcp.WithDescription("List the card sets, ability identifiers, and cards available to the generators. Read-only."),
	)
}

func getHistoryTool() mcp.Tool {
	return mcp.NewTool("get_history",
		mcp.WithDescription("Return the recent generation history of this session (last 10 supplies, last 5 basic decks). Read-only."),
	)
}

// --- Tool handlers ---

func handleGenerateSupply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeStore == nil {
		return mcp.NewToolResultError("No catalog loaded."), nil
	}

	filter := parseSets(request.GetString("card_sets", ""))

	var abilities []catalog.Ability
	for _, id := range splitList(request.GetString("abilities", "")) {
		a := catalog.Ability(id)
		if !a.Valid() {
			return mcp.NewToolResultErrorf("Unknown ability %q. Use list_catalog for valid identifiers.", id), nil
		}
		abilities = append(abilities, a)
	}

	logger := genlog.NewMemoryLogger()
	result, err := supply.NewAssembler(activeStore, activeSource, logger).Generate(filter, abilities)
	if err != nil {
		return mcp.NewToolResultErrorf("Supply generation failed: %v", err), nil
	}
	activeHistory.AddSupply(filter, abilities, result)

	return mcp.NewToolResultText(respondJSON(supplyResultView(result, logger.Events()))), nil
}

func handleGenerateBasicDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeStore == nil {
		return mcp.NewToolResultError("No catalog loaded."), nil
	}

	players := request.GetInt("players", 0)
	filter := parseSets(request.GetString("card_sets", ""))

	logger := genlog.NewMemoryLogger()
	result, err := nemesis.NewAssembler(activeStore, activeSource, logger).Generate(filter, players)
	if err != nil {
		return mcp.NewToolResultErrorf("Basic deck generation failed: %v", err), nil
	}
	activeHistory.AddDeck(filter, players, result)

	return mcp.NewToolResultText(respondJSON(deckResultView(result, players, logger.Events()))), nil
}

func handleListCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeStore == nil {
		return mcp.NewToolResultError("No catalog loaded."), nil
	}

	view := catalogResult{Sets: activeStore.Sets()}
	for _, a := range catalog.Abilities() {
		view.Abilities = append(view.Abilities, abilityResult{ID: string(a), Label: a.Label()})
	}
	for _, c := range activeStore.Cards() {
		view.Cards = append(view.Cards, cardResultView(c))
	}

	return mcp.NewToolResultText(respondJSON(view)), nil
}

func handleGetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeHistory == nil {
		return mcp.NewToolResultError("No catalog loaded."), nil
	}

	view := historyResult{Supplies: []supplyResult{}, Decks: []deckResult{}}
	for _, entry := range activeHistory.Supplies() {
		view.Supplies = append(view.Supplies, supplyResultView(entry.Supply, nil))
	}
	for _, entry := range activeHistory.Decks() {
		view.Decks = append(view.Decks, deckResultView(entry.Deck, entry.Players, nil))
	}

	return mcp.NewToolResultText(respondJSON(view)), nil
}

// --- Helpers ---

// splitList splits a comma-separated argument, trimming whitespace.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseSets(s string) catalog.SetFilter {
	return catalog.SetFilter(splitList(s))
}

func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}

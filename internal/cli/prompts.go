package cli

import (
	"coup-toolbox/internal/game"
	"coup-toolbox/internal/player"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// RoleColors maps roles to specific colors for display.
var RoleColors = map[player.Role]*color.Color{
	player.RolePlain:    color.New(color.FgWhite),
	player.RoleSpy:      color.New(color.FgMagenta),
	player.RoleMerchant: color.New(color.FgYellow),
	player.RoleJudge:    color.New(color.FgBlue),
	player.RoleGovernor: color.New(color.FgGreen),
	player.RoleGeneral:  color.New(color.FgRed),
	player.RoleBaron:    color.New(color.FgCyan),
}

// Colorize returns text in the color of role.
func Colorize(text string, role player.Role) string {
	if c, ok := RoleColors[role]; ok {
		return c.Sprint(text)
	}
	return text
}

// ColorizeName colors an active player's name by role.
func ColorizeName(name string, g *game.Game) string {
	if p, ok := g.Player(name); ok {
		return Colorize(name, p.Role())
	}
	return name
}

// RenderRoster displays the active players in turn order.
func RenderRoster(views []player.View, current int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Table")
	t.AppendHeader(table.Row{"#", "Player", "Role", "Coins", "Sanctioned", "Arrested", "Can Arrest", "Last Action"})
	for i, v := range views {
		marker := ""
		if i == current {
			marker = "▶"
		}
		t.AppendRow(table.Row{
			marker,
			Colorize(v.Name, v.Role),
			Colorize(v.Role.String(), v.Role),
			v.Coins,
			flagSymbol(v.Sanctioned),
			flagSymbol(v.Arrested),
			flagSymbol(v.CanArrest),
			v.LastAction,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 4, Align: text.AlignRight}})
	t.Render()
}

// RenderRoles displays what every role does.
func RenderRoles() {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Roles")
	t.AppendHeader(table.Row{"Role", "Tax", "Ability", "Description"})
	roles := append([]player.Role{player.RolePlain}, player.DistinguishedRoles()...)
	for _, r := range roles {
		t.AppendRow(table.Row{Colorize(r.String(), r), r.TaxAmount(), abilityLabel(r), r.Summary()})
	}
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}

func abilityLabel(r player.Role) string {
	switch r.Ability() {
	case player.AbilityPassive:
		return "passive"
	case player.AbilitySelf:
		return "self"
	case player.AbilityTargeted:
		if cost := r.AbilityCost(); cost > 0 {
			return fmt.Sprintf("targeted (%d)", cost)
		}
		return "targeted"
	default:
		return "-"
	}
}

func flagSymbol(on bool) string {
	if on {
		return C.No.Sprint("✔")
	}
	return C.Maybe.Sprint("·")
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Coup Toolbox ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/coup play")
	fmt.Println("    Seat 2-6 players at one terminal and play a game.")
	fmt.Println("  go run ./cmd/coup roles")
	fmt.Println("    Print the role reference.")
	fmt.Println("\nFlags:")
	fmt.Println("  --loglevel debug    Trace every rule the engine applies.")
	fmt.Println("  --config <file>     Table settings (default default_config.json).")
	fmt.Println("  --seed <n>          Pin role assignment.")
}

func (c *CLI) printPlayHelp() {
	C.Header.Println("\n--- Commands ---")
	fmt.Println("Actions are taken by the player named in the prompt.")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"gather", "g", "Take 1 coin."},
		{"tax", "t", "Take 2 coins (Governor: 3)."},
		{"bribe", "b", "Pay 4 coins for an extra action."},
		{"arrest <player>", "a", "Take 1 coin from a player (a Merchant pays 2 to the bank)."},
		{"sanction <player>", "s", "Pay 3 to block a player's gather and tax (4 against a Judge)."},
		{"coup <player>", "c", "Pay 7 to eliminate a player. Mandatory at 10 coins."},
		{"ability <player> [target]", "ab", "Use a role ability (the Judge may react out of turn)."},
		{"roster", "r", "Show the table."},
		{"roles", "", "Show what each role does."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Leave the game."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) int {
	for {
		input := c.promptForString(prompt)
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}

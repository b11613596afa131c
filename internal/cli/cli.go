package cli

import (
	"coup-toolbox/internal/config"
	"coup-toolbox/internal/game"
	"coup-toolbox/internal/player"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		return c.runPlayMode(cfg, rand)
	case "roles":
		RenderRoles()
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func (c *CLI) runPlayMode(cfg *config.GameConfig, rand *rand.Rand) error {
	C.Header.Println("\n--- Setting Up the Table ---")

	builder := game.NewBuilder(cfg, c.log, rand)
	builder.EventManager().Subscribe(&TableRenderer{})
	g, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	numPlayers := c.promptForInt(fmt.Sprintf("How many players? (%d-%d): ", cfg.MinPlayers, cfg.MaxPlayers), cfg.MinPlayers, cfg.MaxPlayers)
	for i := 0; i < numPlayers; {
		name := c.promptForString(fmt.Sprintf("Enter name for Player %d: ", i+1))
		if _, err := g.AddPlayer(name); err != nil {
			printError(err)
			continue
		}
		i++
	}

	RenderRoster(g.Roster(), g.CurrentPlayerIndex())
	c.printPlayHelp()

	for g.IsGame() {
		current, _ := g.Turn()
		input, err := c.line.Prompt(fmt.Sprintf("(%s) ", current))
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		parts := strings.Fields(input)

		switch strings.ToLower(parts[0]) {
		case "roster", "r":
			RenderRoster(g.Roster(), g.CurrentPlayerIndex())
		case "roles":
			RenderRoles()
		case "help", "h":
			c.printPlayHelp()
		case "quit", "q":
			C.Info.Println("Leaving the table.")
			return nil
		default:
			msg, err := Dispatch(g, parts)
			if err != nil {
				printError(err)
				continue
			}
			if msg != "" {
				C.Info.Println(msg)
			}
		}
	}

	winner, err := g.Winner()
	if err != nil {
		return err
	}
	C.Yes.Printf("\n%s wins after %d turns!\n", ColorizeName(winner, g), g.TurnCount())
	return nil
}

// Dispatch runs one game command on behalf of the current player.
// The ability command names its user explicitly since the Judge may react out of turn.
func Dispatch(g *game.Game, parts []string) (string, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: empty command", player.ErrUnsupported)
	}
	actor, err := g.Turn()
	if err != nil {
		return "", err
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	needTarget := func() (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("%w: '%s' needs exactly one target", player.ErrIllegalTarget, cmd)
		}
		return args[0], nil
	}

	switch cmd {
	case "gather", "g":
		return "", g.Gather(actor)
	case "tax", "t":
		return "", g.Tax(actor)
	case "bribe", "b":
		return "", g.Bribe(actor)
	case "arrest", "a":
		target, err := needTarget()
		if err != nil {
			return "", err
		}
		return "", g.Arrest(actor, target)
	case "sanction", "s":
		target, err := needTarget()
		if err != nil {
			return "", err
		}
		return "", g.Sanction(actor, target)
	case "coup", "c":
		target, err := needTarget()
		if err != nil {
			return "", err
		}
		return "", g.Coup(actor, target)
	case "ability", "ab":
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("%w: usage is 'ability <player> [target]'", player.ErrUnsupported)
		}
		target := ""
		if len(args) == 2 {
			target = args[1]
		}
		e, err := g.Ability(args[0], target)
		if err != nil {
			return "", err
		}
		if p, ok := g.Player(e.Actor); ok && p.Role() == player.RoleSpy {
			return fmt.Sprintf("%s holds %d coins.", e.Target, e.Revealed), nil
		}
		return "", nil
	default:
		return "", fmt.Errorf("%w: unknown command '%s', type 'help' for a list", player.ErrUnsupported, cmd)
	}
}

func printError(err error) {
	C.Warn.Printf("[%s] %v\n", player.KindOf(err), err)
}

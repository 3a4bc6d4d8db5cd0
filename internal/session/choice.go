package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathgame/internal/problemgen"
)

// ErrUnknownChoice is returned when a mode or operator name is not recognised.
var ErrUnknownChoice = errors.New("unknown choice")

// Choice is one playable entry of the mode-selection menu.
type Choice struct {
	Key   string // Stable identifier, e.g. "add", "timeattack"
	Label string // Menu text
	Mode  Mode

	// Operator is fixed for the four single-operator drills. It is zero
	// when Random is set.
	Operator problemgen.Operator
	Random   bool
}

var choices = []Choice{
	{Key: "add", Label: "Addition", Mode: ModeStandard, Operator: problemgen.OpAdd},
	{Key: "sub", Label: "Subtraction", Mode: ModeStandard, Operator: problemgen.OpSub},
	{Key: "mul", Label: "Multiplication", Mode: ModeStandard, Operator: problemgen.OpMul},
	{Key: "div", Label: "Division", Mode: ModeStandard, Operator: problemgen.OpDiv},
	{Key: "random", Label: "Random Sums", Mode: ModeStandard, Random: true},
	{Key: "timeattack", Label: "Time Attack", Mode: ModeTimeAttack, Random: true},
	{Key: "survival", Label: "Unlimited Mode", Mode: ModeSurvival, Random: true},
}

// Choices returns the playable menu entries in display order.
func Choices() []Choice {
	out := make([]Choice, len(choices))
	copy(out, choices)
	return out
}

// ChoiceByKey looks up a menu entry by its key.
func ChoiceByKey(key string) (Choice, bool) {
	for _, c := range choices {
		if c.Key == key {
			return c, true
		}
	}
	return Choice{}, false
}

// ParseChoice maps command-line mode and operator names to a Choice.
// The operator only matters for the standard mode; timed and survival
// sessions always use random operators.
func ParseChoice(mode, op string) (Choice, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	op = strings.ToLower(strings.TrimSpace(op))

	switch mode {
	case "", "standard":
	case "timeattack", "time-attack", "time":
		c, _ := ChoiceByKey("timeattack")
		return c, nil
	case "survival", "unlimited":
		c, _ := ChoiceByKey("survival")
		return c, nil
	default:
		return Choice{}, fmt.Errorf("%w: mode %q", ErrUnknownChoice, mode)
	}

	key := op
	switch op {
	case "", "rand":
		key = "random"
	case "+", "addition":
		key = "add"
	case "-", "subtraction":
		key = "sub"
	case "x", "*", "multiplication":
		key = "mul"
	case "/", "division":
		key = "div"
	}
	c, ok := ChoiceByKey(key)
	if !ok || c.Mode != ModeStandard {
		return Choice{}, fmt.Errorf("%w: operator %q", ErrUnknownChoice, op)
	}
	return c, nil
}

func (c Choice) valid() bool {
	if c.Mode < ModeStandard || c.Mode > ModeSurvival {
		return false
	}
	if c.Mode != ModeStandard && !c.Random {
		return false
	}
	return c.Random || c.Operator.Valid()
}

func (c Choice) generate(g *problemgen.Generator, b problemgen.Bound) (*problemgen.Question, error) {
	if c.Random {
		return g.GenerateRandom(b)
	}
	return g.Generate(c.Operator, b)
}

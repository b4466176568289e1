package tree

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// Mode selects the tree shape.
type Mode string

const (
	ModeFlexible Mode = "flexible"
	ModeRandom   Mode = "random"
)

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeFlexible, ModeRandom:
		return m, nil
	case "":
		return DefaultMode, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: flexible, random)", s)
}

// Generation defaults and bounds.
const (
	DefaultLevels      = 3
	DefaultNodes       = 7
	DefaultMaxChildren = 2
	DefaultMode        = ModeFlexible

	MinLevels      = 2
	MaxLevels      = 10
	MinNodes       = 3
	MaxNodes       = 50
	MinMaxChildren = 2
	MaxMaxChildren = 5
)

// Canvas geometry shared by both generators.
const (
	CanvasWidth     = 500.0
	minCanvasHeight = 350.0
	levelHeight     = 70.0

	randomRootY   = 50.0
	maxSpread     = 200.0
	horizontalPad = 30.0
	seedMixer     = 0xdeadbeef
)

// CanvasHeight returns the canvas height for a tree with the given level count.
func CanvasHeight(levels int) float64 {
	return math.Max(minCanvasHeight, float64(levels)*levelHeight)
}

func levelY(level, levels int) float64 {
	return CanvasHeight(levels) / float64(levels+1) * float64(level+1)
}

// Params configures tree generation.
type Params struct {
	Levels      int    `json:"levels" toml:"levels"`
	Nodes       int    `json:"nodes" toml:"nodes"`
	MaxChildren int    `json:"max_children" toml:"max_children"`
	Mode        Mode   `json:"mode,omitempty" toml:"mode"`
	Seed        uint64 `json:"seed,omitempty" toml:"seed"`
}

// DefaultParams returns the parameters of the initial 7-node binary tree.
func DefaultParams() Params {
	return Params{
		Levels:      DefaultLevels,
		Nodes:       DefaultNodes,
		MaxChildren: DefaultMaxChildren,
		Mode:        DefaultMode,
	}
}

// SetDefaults fills zero fields with defaults. Seed is left untouched.
func (p *Params) SetDefaults() {
	if p.Levels == 0 {
		p.Levels = DefaultLevels
	}
	if p.Nodes == 0 {
		p.Nodes = DefaultNodes
	}
	if p.MaxChildren == 0 {
		p.MaxChildren = DefaultMaxChildren
	}
	if p.Mode == "" {
		p.Mode = DefaultMode
	}
}

// Validate checks parameter bounds. Messages match what the visualizer
// shows its users.
func (p Params) Validate() error {
	if err := errors.ValidateRange("Levels", p.Levels, MinLevels, MaxLevels); err != nil {
		return err
	}
	if err := errors.ValidateRange("Node count", p.Nodes, MinNodes, MaxNodes); err != nil {
		return err
	}
	if err := errors.ValidateRange("Max children", p.MaxChildren, MinMaxChildren, MaxMaxChildren); err != nil {
		return err
	}
	if _, err := ParseMode(string(p.Mode)); err != nil {
		return err
	}
	return nil
}

// Capacity returns the largest node count a flexible tree with these
// parameters can hold.
func (p Params) Capacity() int {
	total, width := 0, 1
	for l := 0; l < p.Levels; l++ {
		total += width
		if total >= MaxNodes {
			return total
		}
		width *= p.MaxChildren
	}
	return total
}

// Generate validates p and builds a tree. A zero Seed is replaced with a
// time-derived seed, recorded on the returned tree.
func Generate(p Params) (*Tree, error) {
	p.SetDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	mode, _ := ParseMode(string(p.Mode))

	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := NewRand(seed)
	labels := Labels(p.Nodes)

	var t *Tree
	switch mode {
	case ModeRandom:
		t = BuildRandom(labels, p.Levels, p.MaxChildren, rng)
	default:
		t = BuildFlexible(labels, p.Levels, p.MaxChildren, rng)
	}
	t.Seed = seed
	return t, nil
}

// NewRand returns the PCG source used for generation.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMixer))
}

func randomCost(rng *rand.Rand) int {
	return rng.IntN(MaxCost-MinCost+1) + MinCost
}

// BuildFlexible builds a tree level by level. For each parent of the current
// level, the remaining labels are spread evenly over the parents still to be
// served; the last parent of a level takes as many as it can. Parameters are
// not validated. Returns nil when labels is empty.
func BuildFlexible(labels []string, levels, maxChildren int, rng *rand.Rand) *Tree {
	if len(labels) == 0 {
		return nil
	}
	next := 0
	newNode := func(level int) *Node {
		n := &Node{
			Label: labels[next],
			Level: level,
			Pos:   Point{Y: levelY(level, levels)},
			Cost:  randomCost(rng),
		}
		next++
		return n
	}

	root := newNode(0)
	root.Pos.X = CanvasWidth / 2
	current := []*Node{root}

	for level := 1; level < levels && next < len(labels); level++ {
		var nextLevel []*Node
		for i, parent := range current {
			remaining := len(labels) - next
			if remaining == 0 {
				break
			}
			remainingParents := len(current) - i - 1

			var count int
			if remainingParents == 0 {
				count = min(maxChildren, remaining)
			} else {
				count = min(maxChildren, ceilDiv(remaining, remainingParents+1))
			}
			for c := 0; c < count && next < len(labels); c++ {
				child := newNode(level)
				parent.Children = append(parent.Children, child)
				nextLevel = append(nextLevel, child)
			}
		}
		spreadEvenly(nextLevel)
		current = nextLevel
	}

	t := New(root, levels, maxChildren)
	t.Mode = ModeFlexible
	return t
}

func spreadEvenly(level []*Node) {
	step := CanvasWidth / float64(len(level)+1)
	for i, n := range level {
		n.Pos.X = step * float64(i+1)
	}
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// BuildRandom builds a tree breadth first, giving every parent above the
// last level between 1 and maxChildren children (bounded by the labels
// left). Children are spread around their parent's x position and clamped
// to the canvas. Parameters are not validated. Returns nil when labels is
// empty.
func BuildRandom(labels []string, levels, maxChildren int, rng *rand.Rand) *Tree {
	if len(labels) == 0 {
		return nil
	}
	root := &Node{
		Label: labels[0],
		Pos:   Point{X: CanvasWidth / 2, Y: randomRootY},
		Cost:  randomCost(rng),
	}
	next := 1
	queue := []*Node{root}

	for len(queue) > 0 && next < len(labels) {
		parent := queue[0]
		queue = queue[1:]
		if parent.Level >= levels-1 {
			continue
		}

		possible := min(maxChildren, len(labels)-next)
		count := rng.IntN(possible) + 1

		spread := math.Min(maxSpread, CanvasWidth/float64(count+1))
		startX := parent.Pos.X - spread*float64(count)/2
		for i := 0; i < count && next < len(labels); i++ {
			x := startX + spread*float64(i) + spread/2
			child := &Node{
				Label: labels[next],
				Level: parent.Level + 1,
				Pos: Point{
					X: math.Max(horizontalPad, math.Min(CanvasWidth-horizontalPad, x)),
					Y: levelY(parent.Level+1, levels),
				},
				Cost: randomCost(rng),
			}
			next++
			parent.Children = append(parent.Children, child)
			queue = append(queue, child)
		}
	}

	t := New(root, levels, maxChildren)
	t.Mode = ModeRandom
	return t
}

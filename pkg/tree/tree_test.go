package tree

import (
	"errors"
	"slices"
	"testing"

	apperrors "github.com/matzehuels/algoviz/pkg/errors"
)

func TestLabels(t *testing.T) {
	if got := Labels(0); got != nil {
		t.Errorf("Labels(0) = %v, want nil", got)
	}
	if got, want := Labels(3), []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("Labels(3) = %v, want %v", got, want)
	}

	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		if got := Label(tt.index); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestBuildFlexibleDefault(t *testing.T) {
	tr := BuildFlexible(Labels(7), 3, 2, NewRand(1))

	if got, want := tr.Labels(), []string{"A", "B", "D", "E", "C", "F", "G"}; !slices.Equal(got, want) {
		t.Fatalf("pre-order = %v, want %v", got, want)
	}
	if tr.Mode != ModeFlexible {
		t.Errorf("Mode = %v, want %v", tr.Mode, ModeFlexible)
	}

	tests := []struct {
		label string
		x, y  float64
		level int
	}{
		{"A", 250, 87.5, 0},
		{"B", 500.0 / 3, 175, 1},
		{"C", 1000.0 / 3, 175, 1},
		{"D", 100, 262.5, 2},
		{"E", 200, 262.5, 2},
		{"F", 300, 262.5, 2},
		{"G", 400, 262.5, 2},
	}
	for _, tt := range tests {
		n := tr.Find(tt.label)
		if n == nil {
			t.Fatalf("Find(%q) = nil", tt.label)
		}
		if n.Pos.X != tt.x || n.Pos.Y != tt.y {
			t.Errorf("%s position = (%v, %v), want (%v, %v)", tt.label, n.Pos.X, n.Pos.Y, tt.x, tt.y)
		}
		if n.Level != tt.level {
			t.Errorf("%s level = %d, want %d", tt.label, n.Level, tt.level)
		}
		if n.Cost < MinCost || n.Cost > MaxCost {
			t.Errorf("%s cost = %d, out of range", tt.label, n.Cost)
		}
	}
}

func TestBuildFlexibleDistribution(t *testing.T) {
	tests := []struct {
		name        string
		nodes       int
		levels      int
		maxChildren int
		children    map[string][]string
	}{
		{
			name:  "uneven last level",
			nodes: 5, levels: 3, maxChildren: 2,
			children: map[string][]string{"A": {"B", "C"}, "B": {"D"}, "C": {"E"}},
		},
		{
			name:  "wide root",
			nodes: 6, levels: 2, maxChildren: 5,
			children: map[string][]string{"A": {"B", "C", "D", "E", "F"}},
		},
		{
			name:  "fills first levels before deeper ones",
			nodes: 4, levels: 4, maxChildren: 2,
			children: map[string][]string{"A": {"B", "C"}, "B": {"D"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := BuildFlexible(Labels(tt.nodes), tt.levels, tt.maxChildren, NewRand(7))
			for _, n := range tr.Nodes() {
				var got []string
				for _, c := range n.Children {
					got = append(got, c.Label)
				}
				if want := tt.children[n.Label]; !slices.Equal(got, want) {
					t.Errorf("children of %s = %v, want %v", n.Label, got, want)
				}
			}
		})
	}
}

func TestBuildFlexibleCapacity(t *testing.T) {
	tr := BuildFlexible(Labels(7), 2, 2, NewRand(1))
	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (capacity of two binary levels)", tr.Len())
	}
	p := Params{Levels: 2, Nodes: 7, MaxChildren: 2}
	if p.Capacity() != 3 {
		t.Errorf("Capacity() = %d, want 3", p.Capacity())
	}
}

func TestBuildEmpty(t *testing.T) {
	if BuildFlexible(nil, 3, 2, NewRand(1)) != nil {
		t.Error("BuildFlexible(nil) should return nil")
	}
	if BuildRandom(nil, 3, 2, NewRand(1)) != nil {
		t.Error("BuildRandom(nil) should return nil")
	}
}

func TestBuildRandom(t *testing.T) {
	tr := BuildRandom(Labels(20), 4, 3, NewRand(99))

	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if tr.Root.Pos != (Point{X: 250, Y: 50}) {
		t.Errorf("root position = %v, want (250, 50)", tr.Root.Pos)
	}
	for _, n := range tr.Nodes() {
		if n.Level > 3 {
			t.Errorf("%s level = %d, exceeds last level 3", n.Label, n.Level)
		}
		if len(n.Children) > 3 {
			t.Errorf("%s has %d children, max 3", n.Label, len(n.Children))
		}
		if n == tr.Root {
			continue
		}
		if n.Pos.X < 30 || n.Pos.X > 470 {
			t.Errorf("%s x = %v, outside [30, 470]", n.Label, n.Pos.X)
		}
		if want := levelY(n.Level, 4); n.Pos.Y != want {
			t.Errorf("%s y = %v, want %v", n.Label, n.Pos.Y, want)
		}
	}

	// Labels are assigned breadth first.
	if got := tr.Root.Child(0).Label; got != "B" {
		t.Errorf("first child = %s, want B", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeFlexible, ModeRandom} {
		p := Params{Levels: 5, Nodes: 30, MaxChildren: 3, Mode: mode, Seed: 42}
		a, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate(%s) error: %v", mode, err)
		}
		b, _ := Generate(p)

		if !slices.Equal(a.Labels(), b.Labels()) {
			t.Errorf("%s: labels differ between runs", mode)
		}
		for i, n := range a.Nodes() {
			m := b.Nodes()[i]
			if n.Cost != m.Cost || n.Pos != m.Pos {
				t.Errorf("%s: node %s differs between runs", mode, n.Label)
			}
		}
		if a.Seed != 42 {
			t.Errorf("Seed = %d, want 42", a.Seed)
		}
	}
}

func TestGenerateRecordsSeed(t *testing.T) {
	tr, err := Generate(Params{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if tr.Seed == 0 {
		t.Error("Generate() should record a non-zero seed")
	}
	if tr.Len() != DefaultNodes {
		t.Errorf("Len() = %d, want %d", tr.Len(), DefaultNodes)
	}
}

func TestGenerateInvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		code    apperrors.Code
		message string
	}{
		{"levels low", Params{Levels: 1, Nodes: 7, MaxChildren: 2}, apperrors.ErrCodeInvalidParams, "Levels must be between 2 and 10"},
		{"levels high", Params{Levels: 11, Nodes: 7, MaxChildren: 2}, apperrors.ErrCodeInvalidParams, "Levels must be between 2 and 10"},
		{"nodes low", Params{Levels: 3, Nodes: 2, MaxChildren: 2}, apperrors.ErrCodeInvalidParams, "Node count must be between 3 and 50"},
		{"nodes high", Params{Levels: 3, Nodes: 51, MaxChildren: 2}, apperrors.ErrCodeInvalidParams, "Node count must be between 3 and 50"},
		{"children low", Params{Levels: 3, Nodes: 7, MaxChildren: 1}, apperrors.ErrCodeInvalidParams, "Max children must be between 2 and 5"},
		{"children high", Params{Levels: 3, Nodes: 7, MaxChildren: 6}, apperrors.ErrCodeInvalidParams, "Max children must be between 2 and 5"},
		{"mode", Params{Levels: 3, Nodes: 7, MaxChildren: 2, Mode: "spiral"}, apperrors.ErrCodeInvalidMode, `invalid mode: "spiral" (must be one of: flexible, random)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.params)
			if err == nil {
				t.Fatal("Generate() should fail")
			}
			if !apperrors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", apperrors.GetCode(err), tt.code)
			}
			if got := apperrors.UserMessage(err); got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"flexible", ModeFlexible, false},
		{"RANDOM", ModeRandom, false},
		{"", ModeFlexible, false},
		{"custom", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestPaths(t *testing.T) {
	tr := BuildFlexible(Labels(7), 3, 2, NewRand(3))

	path := tr.PathTo("F")
	var labels []string
	for _, n := range path {
		labels = append(labels, n.Label)
	}
	if want := []string{"A", "C", "F"}; !slices.Equal(labels, want) {
		t.Errorf("PathTo(F) = %v, want %v", labels, want)
	}
	if want := tr.Find("C").Cost + tr.Find("F").Cost; tr.PathCost("F") != want {
		t.Errorf("PathCost(F) = %d, want %d", tr.PathCost("F"), want)
	}
	if tr.PathCost("A") != 0 {
		t.Errorf("PathCost(root) = %d, want 0", tr.PathCost("A"))
	}
	if tr.PathTo("Z") != nil || tr.PathCost("Z") != -1 {
		t.Error("unknown label should have no path")
	}
	if p := tr.Parent("D"); p == nil || p.Label != "B" {
		t.Errorf("Parent(D) = %v, want B", p)
	}
	if tr.Parent("A") != nil {
		t.Error("root should have no parent")
	}
	if tr.Depth() != 2 || tr.EdgeCount() != 6 {
		t.Errorf("Depth() = %d, EdgeCount() = %d; want 2, 6", tr.Depth(), tr.EdgeCount())
	}
	var level []string
	for _, n := range tr.LevelNodes(2) {
		level = append(level, n.Label)
	}
	if want := []string{"D", "E", "F", "G"}; !slices.Equal(level, want) {
		t.Errorf("LevelNodes(2) = %v, want %v", level, want)
	}
}

func TestValidate(t *testing.T) {
	ok := New(&Node{Label: "A", Children: []*Node{{Label: "B", Level: 1, Cost: 3}}}, 2, 2)
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name string
		root *Node
		want error
	}{
		{"no root", nil, ErrNoRoot},
		{"duplicate", &Node{Label: "A", Children: []*Node{{Label: "A", Level: 1, Cost: 1}}}, ErrDuplicateLabel},
		{"level", &Node{Label: "A", Children: []*Node{{Label: "B", Level: 2, Cost: 1}}}, ErrLevelMismatch},
		{"cost", &Node{Label: "A", Children: []*Node{{Label: "B", Level: 1, Cost: 11}}}, ErrCostRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.root, 2, 2).Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

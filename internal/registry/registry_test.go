package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gifteroids/internal/core"
)

type stubGame struct {
	id    string
	title string
	ticks int
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig) { s.ticks = 0 }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	s.ticks++
	return core.StepResult{}
}

func stubFactory(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", stubFactory("zz_stub_b", "Stub B"))
	Register("zz_stub_a", stubFactory("zz_stub_a", "Stub A"))

	if !Exists("zz_stub_a") {
		t.Fatal("Exists(zz_stub_a) = false, expected true")
	}
	if Exists("zz_missing") {
		t.Error("Exists(zz_missing) = true, expected false")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub A")
	}

	// Every Create returns a fresh instance.
	g.Step(core.NewInputFrame())
	g2, _ := Create("zz_stub_a")
	if g2.(*stubGame).ticks != 0 {
		t.Errorf("new instance ticks = %d, expected 0", g2.(*stubGame).ticks)
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_list_2", stubFactory("zz_list_2", "Two"))
	Register("zz_list_1", stubFactory("zz_list_1", "One"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "zz_list_1" {
			found = true
			if info.Title != "One" {
				t.Errorf("Title = %q, expected %q", info.Title, "One")
			}
		}
	}
	if !found {
		t.Error("List() missing zz_list_1")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("zz_nope")
	if err == nil {
		t.Fatal("Create(unknown) error = nil, expected error")
	}
	if !strings.Contains(err.Error(), "zz_nope") {
		t.Errorf("error = %q, expected it to name the game", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", stubFactory("zz_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("Register(duplicate) did not panic")
		}
	}()
	Register("zz_dup", stubFactory("zz_dup", "Dup"))
}

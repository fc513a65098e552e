package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

type stubGame struct {
	opts  Options
	ticks int
}

func (g *stubGame) ID() string                  { return "stub" }
func (g *stubGame) Title() string               { return "Stub" }
func (g *stubGame) Reset()                      { g.ticks = 0 }
func (g *stubGame) Apply(core.Action)           {}
func (g *stubGame) Tick()                       { g.ticks++ }
func (g *stubGame) TickInterval() time.Duration { return time.Second }
func (g *stubGame) Render(*core.Screen)         {}
func (g *stubGame) State() core.GameState       { return core.GameState{Score: g.ticks} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", "Stub", func(opts Options) (Game, error) {
		return &stubGame{opts: opts}, nil
	})

	require.True(t, Exists("zz-stub"))

	g, err := Create("zz-stub", Options{Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), g.(*stubGame).opts.Seed)

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			assert.Equal(t, "Stub", info.Title)
		}
	}
	assert.True(t, found)

	assert.Panics(t, func() {
		Register("zz-stub", "Again", func(Options) (Game, error) { return nil, nil })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist", Options{})
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("does-not-exist"))
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("zz-broken", "Broken", func(Options) (Game, error) { return nil, boom })

	_, err := Create("zz-broken", Options{})
	assert.ErrorIs(t, err, boom)
}

func TestListSorted(t *testing.T) {
	Register("zz-b", "B", func(Options) (Game, error) { return &stubGame{}, nil })
	Register("zz-a", "A", func(Options) (Game, error) { return &stubGame{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}

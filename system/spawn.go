package system

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/termsnake/core"
)

// Occupier reports board cells that food must not land on
type Occupier interface {
	Contains(p core.Point) bool
}

// FoodSpawner draws food positions and initial headings from a seedable source
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner whose draws are fully determined by seed
func NewFoodSpawner(seed uint64) *FoodSpawner {
	return &FoodSpawner{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Place picks a uniformly random free cell by rejection sampling
// The caller guarantees at least one free cell exists
func (s *FoodSpawner) Place(occupied Occupier, width, height int) core.Point {
	for {
		p := core.Point{
			X: s.rng.Intn(width),
			Y: s.rng.Intn(height),
		}
		if !occupied.Contains(p) {
			return p
		}
	}
}

// RandomDirection picks one of the four headings uniformly
func (s *FoodSpawner) RandomDirection() core.Direction {
	return core.Directions[s.rng.Intn(len(core.Directions))]
}

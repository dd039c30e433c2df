package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/labyrinth/internal/game/engine"
	"github.com/cory-johannsen/labyrinth/internal/game/rng"
)

// Property: every generated door set has between 2 and 4 doors, all with
// descriptions, and contains at least one normal door.
func TestGenerateDoors_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		doors := engine.GenerateDoors(rng.NewSeededSource(seed))

		if len(doors) < engine.MinDoors || len(doors) > engine.MaxDoors {
			rt.Fatalf("door count %d outside [%d, %d]", len(doors), engine.MinDoors, engine.MaxDoors)
		}

		normals := 0
		for _, d := range doors {
			if d.Type == engine.DoorNormal {
				normals++
			}
			if d.Description == "" {
				rt.Fatalf("door %v has an empty description", d.Type)
			}
		}
		if normals == 0 {
			rt.Fatalf("door set %v contains no normal door", doors)
		}
	})
}

// The normal door's position must not be fixed: over many seeds it should
// appear at an index other than 0 at least once.
func TestGenerateDoors_NormalDoorShuffled(t *testing.T) {
	moved := false
	for seed := int64(0); seed < 200 && !moved; seed++ {
		doors := engine.GenerateDoors(rng.NewSeededSource(seed))
		for i, d := range doors {
			if d.Type == engine.DoorNormal && i != 0 {
				moved = true
				break
			}
		}
	}
	assert.True(t, moved, "normal door never left index 0 across 200 seeds")
}

func TestDoor_Locked(t *testing.T) {
	assert.False(t, engine.Door{Type: engine.DoorNormal}.Locked())
	assert.True(t, engine.Door{Type: engine.DoorSilver}.Locked())
	assert.True(t, engine.Door{Type: engine.DoorGold}.Locked())
}

func TestDoorType_Display(t *testing.T) {
	assert.Equal(t, "Ordinary", engine.DoorNormal.Display())
	assert.Equal(t, "Silver", engine.DoorSilver.Display())
	assert.Equal(t, "Gold", engine.DoorGold.Display())
}

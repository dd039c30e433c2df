package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/labyrinth/internal/content"
	"github.com/cory-johannsen/labyrinth/internal/game/engine"
)

func TestState_AddItemRespectsCapacity(t *testing.T) {
	var s engine.State
	for i := 0; i < engine.InventoryCapacity; i++ {
		require.True(t, s.AddItem(engine.KeySilver))
	}
	assert.False(t, s.AddItem(engine.KeyGold), "a full inventory must refuse new items")
	assert.Len(t, s.Inventory, engine.InventoryCapacity)
}

func TestState_RemoveItemFirstMatch(t *testing.T) {
	s := engine.State{Inventory: []engine.ItemKind{engine.KeyGold, engine.KeySilver, engine.KeyGold}}

	require.True(t, s.RemoveItem(engine.KeyGold))
	assert.Equal(t, []engine.ItemKind{engine.KeySilver, engine.KeyGold}, s.Inventory)

	assert.False(t, s.RemoveItem("iron_key"))
}

func TestState_HasItem(t *testing.T) {
	s := engine.State{Inventory: []engine.ItemKind{engine.KeySilver}}
	assert.True(t, s.HasItem(engine.KeySilver))
	assert.False(t, s.HasItem(engine.KeyGold))
}

func TestState_CloneIsDeep(t *testing.T) {
	riddle := content.Riddle{ID: 1, Question: "q", Answer: "a"}
	original := engine.State{
		Inventory:    []engine.ItemKind{engine.KeySilver},
		Notes:        []content.Note{{ID: 1, Content: "note"}},
		Doors:        []engine.Door{{Type: engine.DoorGold}},
		Logs:         []string{"one"},
		ActiveRiddle: &riddle,
	}

	clone := original.Clone()
	clone.Inventory[0] = engine.KeyGold
	clone.Notes[0].Content = "changed"
	clone.Doors[0].Type = engine.DoorNormal
	clone.Logs[0] = "changed"
	clone.ActiveRiddle.Answer = "changed"

	assert.Equal(t, engine.KeySilver, original.Inventory[0])
	assert.Equal(t, "note", original.Notes[0].Content)
	assert.Equal(t, engine.DoorGold, original.Doors[0].Type)
	assert.Equal(t, "one", original.Logs[0])
	assert.Equal(t, "a", original.ActiveRiddle.Answer)
}

// Property: no sequence of adds and removes can push the inventory past its
// capacity or below empty.
func TestState_InventoryBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var s engine.State
		kinds := []engine.ItemKind{engine.KeySilver, engine.KeyGold}

		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 50).Draw(rt, "ops")
		for _, op := range ops {
			kind := kinds[op%2]
			if op < 2 {
				s.AddItem(kind)
			} else {
				s.RemoveItem(kind)
			}
			if len(s.Inventory) > engine.InventoryCapacity {
				rt.Fatalf("inventory overflowed: %v", s.Inventory)
			}
		}
	})
}

func TestItemKind_Display(t *testing.T) {
	assert.Equal(t, "Silver Key", engine.KeySilver.Display())
	assert.Equal(t, "Gold Key", engine.KeyGold.Display())
	assert.Equal(t, "rusty_key", engine.ItemKind("rusty_key").Display())
}

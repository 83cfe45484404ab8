package world

import (
	"testing"

	"rogue-engine/internal/geom"
)

func TestGenerateProducesWalkableRooms(t *testing.T) {
	m, res := Generate(GenOptions{Width: 60, Height: 40, Seed: 1, SpawnActors: true})
	if len(m.Rooms) == 0 {
		t.Fatal("expected at least one room")
	}
	if !m.At(res.PlayerPos).Walkable() {
		t.Fatalf("player spawn %+v is not walkable", res.PlayerPos)
	}
	if !m.At(res.StairsPos).Walkable() {
		t.Fatalf("stairs %+v is not walkable", res.StairsPos)
	}
}

func TestDeterministicGeneration(t *testing.T) {
	m1, r1 := Generate(GenOptions{Width: 50, Height: 30, Seed: 99})
	m2, r2 := Generate(GenOptions{Width: 50, Height: 30, Seed: 99})
	if len(m1.Rooms) != len(m2.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(m1.Rooms), len(m2.Rooms))
	}
	if r1.StairsPos != r2.StairsPos {
		t.Fatalf("stairs differ between identical seeds: %+v vs %+v", r1.StairsPos, r2.StairsPos)
	}
	for i := range m1.Rooms {
		if m1.Rooms[i] != m2.Rooms[i] {
			t.Fatalf("room %d differs", i)
		}
	}
}

func TestTileInvariantsHoldAcrossWall(t *testing.T) {
	m, _ := Generate(GenOptions{Width: 60, Height: 40, Seed: 5})
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pos := geom.Vec2{Y: y, X: x}
			tile := m.At(pos)
			if tile.Kind == Wall && (tile.Walkable() || tile.Transparent()) {
				t.Fatalf("wall at %+v reports walkable/transparent", pos)
			}
			if tile.Kind == ClosedDoor && (tile.Walkable() || tile.Transparent()) {
				t.Fatalf("closed door at %+v reports walkable/transparent", pos)
			}
		}
	}
}

func TestFOVSymmetricRecompute(t *testing.T) {
	m, res := Generate(GenOptions{Width: 50, Height: 30, Seed: 3, SpawnActors: true})
	m.ComputeFOV(res.PlayerPos, FOVRadius)
	first := append([]bool(nil), m.fov...)
	m.ComputeFOV(res.PlayerPos, FOVRadius)
	for i := range first {
		if first[i] != m.fov[i] {
			t.Fatalf("recomputing FOV with unchanged inputs changed bit %d", i)
		}
	}
	if !m.IsInFOV(res.PlayerPos) {
		t.Fatal("origin should always be in its own FOV")
	}
}

// openAllDoors opens every closed door on m. Generated rooms are sealed by
// closed doors, which AStar does not enter, so the spawn-to-stairs tests
// open them first, as the player would on the way.
func openAllDoors(m *Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.OpenDoor(geom.Vec2{Y: y, X: x})
		}
	}
}

func TestAStarPathWalkableEndpoints(t *testing.T) {
	m, res := Generate(GenOptions{Width: 60, Height: 40, Seed: 7, SpawnActors: true})
	openAllDoors(m)
	path := m.AStar(res.PlayerPos, res.StairsPos, false, nil)
	if len(path) == 0 {
		t.Fatal("expected a path between spawn and stairs")
	}
	if !path[0].Equal(res.PlayerPos) {
		t.Fatalf("path should start at player pos, got %+v", path[0])
	}
	if !path[len(path)-1].Equal(res.StairsPos) {
		t.Fatalf("path should end at stairs, got %+v", path[len(path)-1])
	}
	for _, p := range path[:len(path)-1] {
		if !m.At(p).Walkable() {
			t.Fatalf("non-goal path tile %+v is not walkable", p)
		}
	}
}

func TestAStarUnreachableReturnsEmpty(t *testing.T) {
	m := NewEmpty(10, 10, 1)
	path := m.AStar(geom.Vec2{Y: 0, X: 0}, geom.Vec2{Y: 9, X: 9}, false, nil)
	if path != nil {
		t.Fatalf("expected no path through an all-wall map, got %v", path)
	}
}

func TestAStarAvoidsOccupiedExceptGoal(t *testing.T) {
	m, res := Generate(GenOptions{Width: 40, Height: 20, Seed: 11, SpawnActors: true})
	openAllDoors(m)
	occupied := func(pos geom.Vec2) bool { return pos.Equal(res.StairsPos) }
	path := m.AStar(res.PlayerPos, res.StairsPos, false, occupied)
	if len(path) == 0 {
		t.Fatal("expected a path even though the goal tile is occupied")
	}
}

func TestDoorsAreNeverDiagonalOnly(t *testing.T) {
	m, _ := Generate(GenOptions{Width: 60, Height: 40, Seed: 21})
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pos := geom.Vec2{Y: y, X: x}
			if m.At(pos).Kind != ClosedDoor {
				continue
			}
			floorNeighbors := 0
			for _, d := range orthogonal {
				if m.At(pos.Add(d)).Kind == Floor {
					floorNeighbors++
				}
			}
			if floorNeighbors == 0 {
				t.Fatalf("door at %+v touches no room floor", pos)
			}
		}
	}
}

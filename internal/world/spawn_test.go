package world

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSelectSpawnNoSpawn(t *testing.T) {
	g, err := GridFromRows("###", "#.#", "###")
	if err != nil {
		t.Fatalf("GridFromRows failed: %v", err)
	}

	p, err := SelectSpawn(g, 32, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoSpawnFound) {
		t.Errorf("Expected ErrNoSpawnFound, got %v", err)
	}
	if p != (Point{}) {
		t.Errorf("Expected origin fallback, got %+v", p)
	}
}

func TestSelectSpawnSingle(t *testing.T) {
	g, err := GridFromRows(
		"....",
		"....",
		"....",
		"..S.",
	)
	if err != nil {
		t.Fatalf("GridFromRows failed: %v", err)
	}

	for seed := int64(0); seed < 5; seed++ {
		p, err := SelectSpawn(g, 32, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("SelectSpawn failed: %v", err)
		}
		if p.X != 64 || p.Y != 96 {
			t.Errorf("Expected (64, 96), got (%v, %v)", p.X, p.Y)
		}
	}
}

func TestSelectSpawnReproducible(t *testing.T) {
	g, err := GridFromRows(
		"S..S",
		".S..",
		"...S",
	)
	if err != nil {
		t.Fatalf("GridFromRows failed: %v", err)
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	valid := make(map[Point]bool)
	for _, p := range SpawnPoints(g, 16) {
		valid[p] = true
	}
	if len(valid) != 4 {
		t.Fatalf("Expected 4 spawn points, got %d", len(valid))
	}

	for i := 0; i < 20; i++ {
		p1, _ := SelectSpawn(g, 16, rng1)
		p2, _ := SelectSpawn(g, 16, rng2)
		if p1 != p2 {
			t.Errorf("Draw %d differs with same seed: %+v != %+v", i, p1, p2)
		}
		if !valid[p1] {
			t.Errorf("Draw %d returned non-spawn point %+v", i, p1)
		}
	}
}

func TestSpawnPointsRowMajor(t *testing.T) {
	g, err := GridFromRows(".S", "S.")
	if err != nil {
		t.Fatalf("GridFromRows failed: %v", err)
	}
	points := SpawnPoints(g, 10)
	want := []Point{{X: 10, Y: 0}, {X: 0, Y: 10}}
	if len(points) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("Point %d: expected %+v, got %+v", i, want[i], points[i])
		}
	}
}

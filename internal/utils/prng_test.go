package utils

import "testing"

func TestPRNGServiceSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: expected identical sequences, got %d and %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Expected seed 42, got %d", a.Seed())
	}
}

func TestPRNGServiceZeroSeedUsesClock(t *testing.T) {
	s := NewPRNGService(0)
	if s.Seed() == 0 {
		t.Error("Expected a non-zero seed when 0 is requested")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	s := NewPRNGService(7)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	seen := make(map[int]bool)
	for _, v := range items {
		if seen[v] {
			t.Fatalf("value %d appears twice after shuffle: %v", v, items)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("Expected 10 distinct values, got %d", len(seen))
	}
}

func TestLevelFraction(t *testing.T) {
	tests := []struct {
		level, max int
		want       float64
	}{
		{1, 15, 0},
		{15, 15, 1},
		{8, 15, 0.5},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := LevelFraction(tt.level, tt.max); got != tt.want {
			t.Errorf("LevelFraction(%d, %d) = %v, want %v", tt.level, tt.max, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Expected 5, got %v", d)
	}
}

func TestChanceEdges(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !s.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

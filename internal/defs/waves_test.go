package defs

import (
	"testing"
	"time"
)

func TestWaveForExplicitTable(t *testing.T) {
	counts := []int{5, 10, 15, 25, 50}
	intervals := []time.Duration{1500, 1200, 1000, 800, 500}
	for i := range counts {
		w := WaveFor(i + 1)
		if w.Count != counts[i] {
			t.Errorf("wave %d: expected count %d, got %d", i+1, counts[i], w.Count)
		}
		if w.SpawnInterval != intervals[i]*time.Millisecond {
			t.Errorf("wave %d: expected interval %v, got %v", i+1, intervals[i]*time.Millisecond, w.SpawnInterval)
		}
	}
}

func TestWaveForFallbackIsCapped(t *testing.T) {
	for _, n := range []int{6, 7, 10, 12, 99} {
		w := WaveFor(n)
		if w.Count != MaxWaveSize {
			t.Errorf("wave %d: expected capped count %d, got %d", n, MaxWaveSize, w.Count)
		}
		if w.SpawnInterval != 400*time.Millisecond {
			t.Errorf("wave %d: expected 400ms interval, got %v", n, w.SpawnInterval)
		}
	}
}

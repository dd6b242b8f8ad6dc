package cssonce

import (
	"sync"
	"testing"
)

func TestTrackerFirstConsumeWins(t *testing.T) {
	tracker := New()

	if !tracker.TryConsume() {
		t.Fatal("first TryConsume should return true")
	}
	if tracker.TryConsume() {
		t.Error("second TryConsume should return false")
	}
}

func TestTrackerStaysConsumed(t *testing.T) {
	tracker := New()
	tracker.TryConsume()

	for i := 0; i < 100; i++ {
		if tracker.TryConsume() {
			t.Fatalf("TryConsume returned true on call %d after first", i+2)
		}
	}
}

func TestTrackerEmitted(t *testing.T) {
	tracker := New()

	if tracker.Emitted() {
		t.Error("fresh tracker should not be emitted")
	}

	tracker.TryConsume()

	if !tracker.Emitted() {
		t.Error("tracker should be emitted after consume")
	}
	// Emitted is a pure read.
	if !tracker.Emitted() {
		t.Error("Emitted should keep returning true")
	}
}

func TestTrackersAreIndependent(t *testing.T) {
	a := New()
	b := New()

	if !a.TryConsume() {
		t.Fatal("first consume of a should win")
	}
	if !b.TryConsume() {
		t.Error("consuming a must not affect b")
	}
}

func TestTrackerConcurrentSingleWinner(t *testing.T) {
	tracker := New()

	const goroutines = 64
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)

	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if tracker.TryConsume() {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}

	close(start)
	wg.Wait()

	if winners != 1 {
		t.Errorf("got %d winners, want exactly 1", winners)
	}
}

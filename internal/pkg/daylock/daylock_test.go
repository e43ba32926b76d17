package daylock

import (
	"sync"
	"testing"
	"time"
)

func TestLock_SerializesSameKey(t *testing.T) {
	l := New()
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("emp-1", date)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestLock_DifferentKeysDoNotBlock(t *testing.T) {
	l := New()
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	unlockA := l.Lock("emp-1", date)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := l.Lock("emp-2", date)
		unlockB()
		unlockC := l.Lock("emp-1", date.AddDate(0, 0, 1))
		unlockC()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("locks for different keys blocked each other")
	}
}

func TestLock_EntryReleasedWhenUncontended(t *testing.T) {
	l := New()
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	unlock := l.Lock("emp-1", date)
	unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.locks) != 0 {
		t.Errorf("locks map has %d entries after release, want 0", len(l.locks))
	}
}

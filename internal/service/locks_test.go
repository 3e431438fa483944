package service

import (
	"sync"
	"testing"
)

func TestPlayerLocksSerialisePerPlayer(t *testing.T) {
	locks := NewPlayerLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("p1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d", counter)
	}
	if locks.size() != 0 {
		t.Errorf("locks not released: %d", locks.size())
	}
}

func TestPlayerLocksIndependentPlayers(t *testing.T) {
	locks := NewPlayerLocks()
	unlockA := locks.Lock("a")
	unlockB := locks.Lock("b")
	if locks.size() != 2 {
		t.Errorf("size = %d", locks.size())
	}
	unlockA()
	unlockB()
}

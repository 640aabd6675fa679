package main

import (
	"sync"
	"testing"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	if w, h, err := s.getSize(); w != 80 || h != 24 || err != nil {
		t.Fatalf("initial size = %dx%d, %v", w, h, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.update(100+i, 40)
		}(i)
	}
	wg.Wait()

	w, h, _ := s.getSize()
	if w < 100 || w >= 110 || h != 40 {
		t.Fatalf("size after updates = %dx%d", w, h)
	}
}

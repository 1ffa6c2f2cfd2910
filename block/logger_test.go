package block

import (
	"bytes"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestSetLogger_Nil(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	block, err := CompressText([]byte("héllo"))
	if err != nil {
		t.Fatalf("CompressText error: %v", err)
	}
	got, err := DecompressBlock(block)
	if err != nil || string(got) != "héllo" {
		t.Errorf("round trip = (%q, %v)", got, err)
	}
}

// TestSetLogger_Concurrent swaps the logger while blocks are compressed.
// Run with -race.
func TestSetLogger_Concurrent(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	const numGoroutines = 8
	const numIterations = 50

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				if i%2 == 0 {
					SetLogger(zap.NewNop())
					continue
				}
				block, err := CompressText(cyrillic)
				if err != nil {
					t.Errorf("CompressText error: %v", err)
					return
				}
				got, err := DecompressBlock(block)
				if err != nil || !bytes.Equal(got, cyrillic) {
					t.Errorf("round trip failed: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

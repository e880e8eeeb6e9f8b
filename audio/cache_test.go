package audio

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/core"
)

func TestEnsureLoadDeduplicates(t *testing.T) {
	c := newClipCache()
	rate := beep.SampleRate(1000)

	var fetches atomic.Int64
	gate := make(chan struct{})
	fetch := func() (*ClipPair, error) {
		fetches.Add(1)
		<-gate
		return makeClipPair(rate, 10, 10, 0.5, -0.5), nil
	}

	const callers = 8
	handles := make([]*pendingLoad, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = c.ensureLoad("track", fetch)
		}(i)
	}
	wg.Wait()

	if !c.loading("track") {
		t.Fatal("no load in flight while fetch is blocked")
	}
	close(gate)

	for i, h := range handles {
		<-h.done
		if h.err != nil {
			t.Fatalf("handle %d settled with error: %v", i, h.err)
		}
		if h.pair == nil {
			t.Fatalf("handle %d settled without a pair", i)
		}
	}

	if got := fetches.Load(); got != 1 {
		t.Errorf("fetch ran %d times for %d callers, want 1", got, callers)
	}
	if c.loading("track") {
		t.Error("inflight entry not removed after settle")
	}
	if _, ok := c.get("track"); !ok {
		t.Error("settled pair not cached")
	}
}

func TestEnsureLoadCachedShortCircuit(t *testing.T) {
	c := newClipCache()
	rate := beep.SampleRate(1000)
	pair := makeClipPair(rate, 10, 10, 0.5, -0.5)
	c.clips["track"] = pair

	h := c.ensureLoad("track", func() (*ClipPair, error) {
		t.Fatal("fetch ran for a cached track")
		return nil, nil
	})

	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("cached handle never settled")
	}
	if h.pair != pair {
		t.Error("cached handle carries a different pair")
	}
}

func TestEnsureLoadFailureNotCached(t *testing.T) {
	c := newClipCache()
	wantErr := errors.New("decode exploded")

	h := c.ensureLoad("track", func() (*ClipPair, error) {
		return nil, wantErr
	})
	<-h.done

	if !errors.Is(h.err, wantErr) {
		t.Fatalf("handle error = %v, want %v", h.err, wantErr)
	}
	if _, ok := c.get("track"); ok {
		t.Error("failed load left an entry in the cache")
	}
	if c.loading("track") {
		t.Error("failed load left an inflight entry")
	}

	// A retry runs the fetch again
	var retried bool
	h2 := c.ensureLoad("track", func() (*ClipPair, error) {
		retried = true
		return makeClipPair(beep.SampleRate(1000), 10, 10, 0.5, -0.5), nil
	})
	<-h2.done
	if !retried {
		t.Error("retry after failure did not fetch")
	}
	if _, ok := c.get(core.TrackID("track")); !ok {
		t.Error("retried load not cached")
	}
}

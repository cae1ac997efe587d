package daily

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ankitadas/tutorbuddy/internal/llm"
)

// memCache is an in-memory DailyRepo.
type memCache struct {
	entries map[string]json.RawMessage
	getErr  error
}

func (m *memCache) Get(_ context.Context, day, kind string) (json.RawMessage, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	data, ok := m.entries[day+"/"+kind]
	return data, ok, nil
}

func (m *memCache) Put(_ context.Context, day, kind string, data json.RawMessage) error {
	if m.entries == nil {
		m.entries = make(map[string]json.RawMessage)
	}
	m.entries[day+"/"+kind] = data
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
}

func newTestService(provider llm.Provider, cache *memCache) *Service {
	return New(provider, cache, rand.New(rand.NewPCG(3, 0)), fixedNow)
}

func TestCannedWordWithoutProvider(t *testing.T) {
	s := newTestService(nil, &memCache{})
	w := s.WordOfDay(context.Background())
	if w.Word == "" || w.Definition == "" {
		t.Errorf("word = %+v", w)
	}
}

func TestWordIsStableForTheDay(t *testing.T) {
	cache := &memCache{}
	s := newTestService(nil, cache)

	first := s.WordOfDay(context.Background())
	for range 5 {
		if again := s.WordOfDay(context.Background()); again != first {
			t.Fatalf("word changed within the day: %+v vs %+v", again, first)
		}
	}
}

func TestGeneratedWordUsedAndCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"word":"Luminous","definition":"Giving off light"}`)},
	)
	cache := &memCache{}
	s := newTestService(mock, cache)

	w := s.WordOfDay(context.Background())
	if w.Word != "Luminous" {
		t.Fatalf("word = %+v", w)
	}

	// Second read hits the cache, not the provider.
	w = s.WordOfDay(context.Background())
	if w.Word != "Luminous" {
		t.Fatalf("cached word = %+v", w)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestProviderFailureFallsBackToCanned(t *testing.T) {
	// Empty mock queue fails every call.
	s := newTestService(llm.NewMockProvider(), &memCache{})
	w := s.WordOfDay(context.Background())
	if w.Word == "" {
		t.Error("expected a canned word despite provider failure")
	}
}

func TestCacheReadErrorRegenerates(t *testing.T) {
	cache := &memCache{getErr: context.DeadlineExceeded}
	s := newTestService(nil, cache)
	if w := s.WordOfDay(context.Background()); w.Word == "" {
		t.Error("cache error must not break content resolution")
	}
}

func TestCorruptedCacheEntryRegenerates(t *testing.T) {
	cache := &memCache{entries: map[string]json.RawMessage{
		"2026-08-28/word": json.RawMessage(`{broken`),
	}}
	s := newTestService(nil, cache)
	if w := s.WordOfDay(context.Background()); w.Word == "" {
		t.Error("corrupted cache entry must read as a miss")
	}
}

func TestFactOfDay(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"fact":"Bananas are berries!"}`)},
	)
	s := newTestService(mock, &memCache{})

	fact := s.FactOfDay(context.Background())
	if fact != "Bananas are berries!" {
		t.Fatalf("fact = %q", fact)
	}
	if again := s.FactOfDay(context.Background()); again != fact {
		t.Errorf("fact changed within the day")
	}
}

func TestCannedFactWithoutProvider(t *testing.T) {
	s := newTestService(nil, &memCache{})
	if fact := s.FactOfDay(context.Background()); fact == "" {
		t.Error("expected a canned fact")
	}
}

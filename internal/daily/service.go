// Package daily produces the word of the day and fact of the day: LLM
// generated when a provider is configured, canned otherwise, cached per
// calendar day.
package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/llm"
	"github.com/ankitadas/tutorbuddy/internal/progress"
	"github.com/ankitadas/tutorbuddy/internal/store"
)

// Cache kinds.
const (
	kindWord = "word"
	kindFact = "fact"
)

const (
	generateMaxTokens   = 200
	generateTemperature = 0.9
)

const wordSystemPrompt = "You pick a word of the day for kids aged 8-12. " +
	"Choose an interesting, slightly challenging word and define it simply."

const factSystemPrompt = "You pick a fun fact of the day for kids aged 8-12. " +
	"It must be true, surprising and easy to understand."

// Service resolves today's content. Safe defaults: any provider or cache
// failure degrades to the canned catalog lists.
type Service struct {
	provider llm.Provider // may be nil
	cache    store.DailyRepo
	rng      *rand.Rand
	now      func() time.Time
}

// New creates a Service. provider may be nil; now may be nil for
// time.Now.
func New(provider llm.Provider, cache store.DailyRepo, rng *rand.Rand, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{provider: provider, cache: cache, rng: rng, now: now}
}

// WordOfDay returns today's word. Stable for the calendar day once
// resolved.
func (s *Service) WordOfDay(ctx context.Context) catalog.Word {
	day := progress.Day(s.now())

	var w catalog.Word
	if s.fromCache(ctx, day, kindWord, &w) && w.Word != "" {
		return w
	}

	if s.provider != nil {
		if gen, err := s.generateWord(ctx); err == nil {
			s.toCache(ctx, day, kindWord, gen)
			return gen
		}
	}

	pool := catalog.WordsOfDay()
	w = pool[s.rng.IntN(len(pool))]
	s.toCache(ctx, day, kindWord, w)
	return w
}

// FactOfDay returns today's fact. Stable for the calendar day once
// resolved.
func (s *Service) FactOfDay(ctx context.Context) string {
	day := progress.Day(s.now())

	var f struct {
		Fact string `json:"fact"`
	}
	if s.fromCache(ctx, day, kindFact, &f) && f.Fact != "" {
		return f.Fact
	}

	if s.provider != nil {
		if fact, err := s.generateFact(ctx); err == nil {
			s.toCache(ctx, day, kindFact, struct {
				Fact string `json:"fact"`
			}{fact})
			return fact
		}
	}

	pool := catalog.FactsOfDay()
	fact := pool[s.rng.IntN(len(pool))]
	s.toCache(ctx, day, kindFact, struct {
		Fact string `json:"fact"`
	}{fact})
	return fact
}

func (s *Service) generateWord(ctx context.Context) (catalog.Word, error) {
	ctx = llm.WithPurpose(ctx, "word-of-day")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: wordSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Give me today's word of the day."},
		},
		Schema:      WordSchema,
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return catalog.Word{}, fmt.Errorf("word generation: %w", err)
	}

	var out struct {
		Word       string `json:"word"`
		Definition string `json:"definition"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return catalog.Word{}, fmt.Errorf("parse word response: %w", err)
	}
	return catalog.Word{Word: out.Word, Definition: out.Definition}, nil
}

func (s *Service) generateFact(ctx context.Context) (string, error) {
	ctx = llm.WithPurpose(ctx, "fact-of-day")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: factSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Give me today's fun fact."},
		},
		Schema:      FactSchema,
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("fact generation: %w", err)
	}

	var out struct {
		Fact string `json:"fact"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse fact response: %w", err)
	}
	return out.Fact, nil
}

// fromCache loads and decodes a cached entry. A read error or corrupted
// blob reads as a miss so the content is regenerated.
func (s *Service) fromCache(ctx context.Context, day, kind string, v any) bool {
	data, ok, err := s.cache.Get(ctx, day, kind)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *Service) toCache(ctx context.Context, day, kind string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	// Cache write failures only cost a regeneration tomorrow.
	_ = s.cache.Put(ctx, day, kind, data)
}

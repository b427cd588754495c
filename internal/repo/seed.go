package repo

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tbourn/go-marketplace/internal/domain"
)

//go:embed seed.yaml
var defaultSeedYAML []byte

// Seed is the catalog written into an empty store by Initialize.
type Seed struct {
	Books   []domain.Book   `yaml:"books"`
	Courses []domain.Course `yaml:"courses"`
}

// DefaultSeed returns the built-in demo catalog.
func DefaultSeed() Seed {
	s, err := ParseSeed(defaultSeedYAML)
	if err != nil {
		// The embedded file is part of the binary; a parse failure is a build defect.
		panic(fmt.Sprintf("repo: embedded seed: %v", err))
	}
	return s
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return s, nil
}

// LoadSeedFile reads a YAML seed document from path.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(data)
}

// Initialize makes sure every well-known key exists. Absent keys are written
// with the seed catalog (books, courses) or an empty collection (ledgers and
// the uploader index). Present keys are never touched, and keys whose
// presence cannot be determined are skipped rather than overwritten.
func (s *Store) Initialize(ctx context.Context, seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	initial := []struct {
		key   string
		value func() []byte
	}{
		{KeyBooks, func() []byte { return mustJSON(nonNil(seed.Books)) }},
		{KeyCourses, func() []byte { return mustJSON(nonNil(seed.Courses)) }},
		{KeyPurchases, emptyList},
		{KeyUserBooks, emptyList},
		{KeyUserCourses, emptyList},
		{KeyDownloadedBooks, emptyList},
		{KeyAccessedCourses, emptyList},
	}

	lg := zerolog.Ctx(ctx)
	for _, it := range initial {
		_, ok, err := s.kv.Get(ctx, it.key)
		if err != nil {
			storeDegraded.WithLabelValues("init").Inc()
			lg.Warn().Err(err).Str("key", it.key).Msg("store unavailable; skipping initialization")
			continue
		}
		if ok {
			continue
		}
		s.write(ctx, it.key, string(it.value()))
		lg.Debug().Str("key", it.key).Msg("initialized collection")
	}
}

func emptyList() []byte { return []byte("[]") }

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("repo: encode seed: %v", err))
	}
	return b
}

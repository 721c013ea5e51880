package phrasebooks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/randomtoy/namefortune-go/internal/domain"
)

//go:embed data/*.json
var phrasebookFS embed.FS

// registry maps language codes to their JSON filenames inside data/.
var registry = map[string]string{
	"tr": "data/tr.json",
	"en": "data/en.json",
}

// EmbeddedStore loads phrasebooks from embedded JSON files.
type EmbeddedStore struct {
	once  sync.Once
	books map[string]domain.Phrasebook
	err   error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.books = make(map[string]domain.Phrasebook, len(registry))
	for lang, filename := range registry {
		raw, err := phrasebookFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded phrasebook %s: %w", lang, err)
			return
		}
		var pb domain.Phrasebook
		if err := json.Unmarshal(raw, &pb); err != nil {
			s.err = fmt.Errorf("parse embedded phrasebook %s: %w", lang, err)
			return
		}
		if err := pb.Validate(); err != nil {
			s.err = err
			return
		}
		s.books[lang] = pb
	}
}

func (s *EmbeddedStore) GetPhrasebook(_ context.Context, lang string) (domain.Phrasebook, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Phrasebook{}, s.err
	}
	pb, ok := s.books[lang]
	if !ok {
		return domain.Phrasebook{}, fmt.Errorf("%w: %q", domain.ErrLanguageNotFound, lang)
	}
	return pb, nil
}

// Languages lists the codes with an embedded phrasebook.
func Languages() []string {
	langs := make([]string, 0, len(registry))
	for lang := range registry {
		langs = append(langs, lang)
	}
	return langs
}

package repo

import (
	_ "embed"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/roadmap-tracker/internal/app/appconfig"
	"exusiai.dev/roadmap-tracker/internal/model"
	"exusiai.dev/roadmap-tracker/internal/util/rekuest"
)

//go:embed assets/plan.json
var embeddedPlan []byte

type Catalog struct {
	catalog  *model.Catalog
	loadedAt time.Time
}

// NewCatalog loads the curriculum from conf.CatalogPath, or from the embedded
// plan when no path is configured.
func NewCatalog(conf *appconfig.Config) (*Catalog, error) {
	raw := embeddedPlan
	source := "embedded"
	if conf.CatalogPath != "" {
		b, err := os.ReadFile(conf.CatalogPath)
		if err != nil {
			return nil, errors.Wrap(err, "repo: catalog: read catalog file")
		}
		raw = b
		source = conf.CatalogPath
	}

	catalog, err := ParseCatalog(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "repo: catalog: load %s", source)
	}

	log.Debug().
		Str("evt.name", "repo.catalog.loaded").
		Str("source", source).
		Int("phases", len(catalog.Phases)).
		Msg("curriculum catalog loaded")

	return &Catalog{catalog: catalog, loadedAt: time.Now()}, nil
}

// ParseCatalog decodes a JSON array of phases and checks that required fields
// are present and week ids are unique across the catalog.
func ParseCatalog(raw []byte) (*model.Catalog, error) {
	var catalog model.Catalog
	if err := json.Unmarshal(raw, &catalog.Phases); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if err := rekuest.Validate.Struct(&catalog); err != nil {
		return nil, errors.Wrap(err, "validate")
	}

	phases := make(map[string]struct{}, len(catalog.Phases))
	weeks := make(map[int]string)
	for _, p := range catalog.Phases {
		if _, ok := phases[p.ID]; ok {
			return nil, errors.Errorf("duplicate phase id %q", p.ID)
		}
		phases[p.ID] = struct{}{}
		for _, w := range p.Weeks {
			if other, ok := weeks[w.ID]; ok {
				return nil, errors.Errorf("week %d appears in both %q and %q", w.ID, other, p.ID)
			}
			weeks[w.ID] = p.ID
		}
	}

	return &catalog, nil
}

func (r *Catalog) GetCatalog() *model.Catalog {
	return r.catalog
}

func (r *Catalog) LoadedAt() time.Time {
	return r.loadedAt
}

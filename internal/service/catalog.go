package service

import (
	"time"

	"exusiai.dev/roadmap-tracker/internal/model"
	"exusiai.dev/roadmap-tracker/internal/repo"
	"exusiai.dev/roadmap-tracker/internal/util"
)

type Catalog struct {
	CatalogRepo *repo.Catalog
}

func NewCatalog(catalogRepo *repo.Catalog) *Catalog {
	return &Catalog{
		CatalogRepo: catalogRepo,
	}
}

func (s *Catalog) GetCatalog() *model.Catalog {
	return s.CatalogRepo.GetCatalog()
}

func (s *Catalog) LoadedAt() time.Time {
	return s.CatalogRepo.LoadedAt()
}

func (s *Catalog) Search(query string) []*model.SearchResult {
	return util.SearchWeeks(s.CatalogRepo.GetCatalog(), query)
}

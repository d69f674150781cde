package shelf

import "github.com/critiqhq/critic/critiqapi"

// Catalog actions cover the public game listing.

// CatalogLoading marks the catalog as fetching. Filters, when
// non-nil, become the active filter set.
type CatalogLoading struct {
	Filters map[string]string
}

// CatalogLoaded reconciles one fetched page into the catalog
type CatalogLoaded struct {
	Games       []*critiqapi.Game
	CurrentPage int64
	TotalPages  int64
	Reset       bool
}

// CatalogFailed records a load failure, leaving items untouched
type CatalogFailed struct {
	Err string
}

func (CatalogLoading) isAction() {}
func (CatalogLoaded) isAction()  {}
func (CatalogFailed) isAction()  {}

func reduceCatalog(c Collection[*critiqapi.Game], a Action) Collection[*critiqapi.Game] {
	switch a := a.(type) {
	case CatalogLoading:
		return c.StartLoading(a.Filters)
	case CatalogLoaded:
		return c.Reconcile(a.Games, a.CurrentPage, a.TotalPages, a.Reset)
	case CatalogFailed:
		return c.Fail(a.Err)
	default:
		return c
	}
}

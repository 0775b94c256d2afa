package sites

import (
	"go.uber.org/fx"

	"github.com/treadworks/orderflow/internal/config"
)

// Module provides the site catalog to the fx container.
var Module = fx.Provide(newCatalog)

// newCatalog honors a file override from configuration, otherwise the
// built-in catalog applies.
func newCatalog(cfg *config.Config) (*Catalog, error) {
	if cfg.SiteCatalogFile != "" {
		return LoadFile(cfg.SiteCatalogFile)
	}
	return Default(), nil
}

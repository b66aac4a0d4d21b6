// Package catalog loads the generated directory dataset and the business
// category mapping table. Both are embedded build artifacts, validated once
// at startup and immutable afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

//go:embed data/directorios.json
var directoriosJSON []byte

//go:embed data/categorias.json
var categoriasJSON []byte

type Catalog struct {
	directorios []domain.Directorio
	porSlug     map[string]domain.Directorio
	categorias  []domain.CategoriaNegocio
	grupos      map[string]domain.CategoriaDirectorio
}

// Load parses the embedded datasets. It fails fast on any inconsistency so a
// bad build artifact never reaches request handling.
func Load() (*Catalog, error) {
	var directorios []domain.Directorio
	if err := json.Unmarshal(directoriosJSON, &directorios); err != nil {
		return nil, fmt.Errorf("parse directorios dataset: %w", err)
	}

	var categorias []domain.CategoriaNegocio
	if err := json.Unmarshal(categoriasJSON, &categorias); err != nil {
		return nil, fmt.Errorf("parse categorias dataset: %w", err)
	}

	return New(directorios, categorias)
}

// New builds a validated catalog from explicit datasets. Tests use it to
// substitute small fixture catalogs.
func New(directorios []domain.Directorio, categorias []domain.CategoriaNegocio) (*Catalog, error) {
	porSlug := make(map[string]domain.Directorio, len(directorios))
	for _, d := range directorios {
		if d.Slug == "" {
			return nil, fmt.Errorf("directorio %q: empty slug", d.Nombre)
		}
		if _, dup := porSlug[d.Slug]; dup {
			return nil, fmt.Errorf("directorio %s: duplicate slug", d.Slug)
		}
		if !d.Tipo.Valido() {
			return nil, fmt.Errorf("directorio %s: unknown tipo %q", d.Slug, d.Tipo)
		}
		if !d.Categoria.Valida() {
			return nil, fmt.Errorf("directorio %s: unknown categoria %q", d.Slug, d.Categoria)
		}
		if !d.Alcance.Valido() {
			return nil, fmt.Errorf("directorio %s: unknown alcance %q", d.Slug, d.Alcance)
		}
		if d.Popularidad < 0 || d.Popularidad > 100 {
			return nil, fmt.Errorf("directorio %s: popularidad %d out of range", d.Slug, d.Popularidad)
		}
		porSlug[d.Slug] = d
	}

	grupos := make(map[string]domain.CategoriaDirectorio, len(categorias))
	for _, c := range categorias {
		if c.Slug == "" {
			return nil, fmt.Errorf("categoria %q: empty slug", c.Nombre)
		}
		if _, dup := grupos[c.Slug]; dup {
			return nil, fmt.Errorf("categoria %s: duplicate slug", c.Slug)
		}
		// Every business category must carry an explicit group; silent
		// fall-through to a default is what this table replaces.
		if !c.Grupo.Valida() {
			return nil, fmt.Errorf("categoria %s: missing or unknown grupo %q", c.Slug, c.Grupo)
		}
		grupos[c.Slug] = c.Grupo
	}

	return &Catalog{
		directorios: directorios,
		porSlug:     porSlug,
		categorias:  categorias,
		grupos:      grupos,
	}, nil
}

// Directorios returns the full dataset. Callers must treat it as read-only.
func (c *Catalog) Directorios() []domain.Directorio {
	return c.directorios
}

func (c *Catalog) Directorio(slug string) (domain.Directorio, bool) {
	d, ok := c.porSlug[slug]
	return d, ok
}

// GrupoDe resolves a business category slug to its directory category group.
// Unknown or empty slugs report false; the scorer then skips the category
// bonus instead of failing.
func (c *Catalog) GrupoDe(categoriaSlug string) (domain.CategoriaDirectorio, bool) {
	grupo, ok := c.grupos[categoriaSlug]
	return grupo, ok
}

func (c *Catalog) Categorias() []domain.CategoriaNegocio {
	return c.categorias
}

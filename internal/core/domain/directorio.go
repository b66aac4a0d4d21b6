package domain

type TipoDirectorio string

const (
	TipoPremium  TipoDirectorio = "premium"
	TipoStandard TipoDirectorio = "standard"
	TipoSocial   TipoDirectorio = "social"
)

type CategoriaDirectorio string

const (
	CategoriaGeneral   CategoriaDirectorio = "general"
	CategoriaResenas   CategoriaDirectorio = "resenas"
	CategoriaServicios CategoriaDirectorio = "servicios"
	CategoriaReformas  CategoriaDirectorio = "reformas"
	CategoriaB2B       CategoriaDirectorio = "b2b"
	CategoriaSocial    CategoriaDirectorio = "social"
	CategoriaRegional  CategoriaDirectorio = "regional"
)

type Alcance string

const (
	AlcanceLocal         Alcance = "local"
	AlcanceRegional      Alcance = "regional"
	AlcanceNacional      Alcance = "nacional"
	AlcanceEuropeo       Alcance = "europeo"
	AlcanceInternacional Alcance = "internacional"
	AlcanceGlobal        Alcance = "global"
)

// Directorio is one entry of the static citation-directory dataset.
// Immutable for the lifetime of the process.
type Directorio struct {
	Slug           string              `json:"slug"`
	Nombre         string              `json:"nombre"`
	Dominio        string              `json:"dominio"`
	URL            string              `json:"url"`
	Descripcion    string              `json:"descripcion"`
	Tipo           TipoDirectorio      `json:"tipo"`
	Categoria      CategoriaDirectorio `json:"categoria"`
	Gratis         bool                `json:"gratis"`
	PermiteResenas bool                `json:"permiteResenas"`
	Alcance        Alcance             `json:"alcance"`
	Popularidad    int                 `json:"popularidad"`
}

// AlcanceAmplio reports whether the directory's reach qualifies for the
// national-reach bonus regardless of the business's city.
func (d Directorio) AlcanceAmplio() bool {
	switch d.Alcance {
	case AlcanceNacional, AlcanceEuropeo, AlcanceInternacional, AlcanceGlobal:
		return true
	default:
		return false
	}
}

func (t TipoDirectorio) Valido() bool {
	switch t {
	case TipoPremium, TipoStandard, TipoSocial:
		return true
	default:
		return false
	}
}

func (c CategoriaDirectorio) Valida() bool {
	switch c {
	case CategoriaGeneral, CategoriaResenas, CategoriaServicios, CategoriaReformas,
		CategoriaB2B, CategoriaSocial, CategoriaRegional:
		return true
	default:
		return false
	}
}

func (a Alcance) Valido() bool {
	switch a {
	case AlcanceLocal, AlcanceRegional, AlcanceNacional, AlcanceEuropeo,
		AlcanceInternacional, AlcanceGlobal:
		return true
	default:
		return false
	}
}

// CategoriaNegocio maps a business category slug to the directory category
// group used by the scorer. The mapping table is exhaustive and checked at
// catalog load time.
type CategoriaNegocio struct {
	Slug   string              `json:"slug"`
	Nombre string              `json:"nombre"`
	Grupo  CategoriaDirectorio `json:"grupo"`
}

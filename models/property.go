package models

type PropertyType string

const (
	TypeApartment  PropertyType = "apartment"
	TypeVilla      PropertyType = "villa"
	TypePlot       PropertyType = "plot"
	TypeCommercial PropertyType = "commercial"
	TypeOffice     PropertyType = "office"
)

// PropertyTypes lists every known type in display order.
var PropertyTypes = []PropertyType{
	TypeApartment,
	TypeVilla,
	TypePlot,
	TypeCommercial,
	TypeOffice,
}

type Category string

const (
	CategoryBuy  Category = "buy"
	CategoryRent Category = "rent"
)

// Property is a catalog record. The catalog is loaded once and never
// mutated; optional attributes use pointers so "not applicable" stays
// distinct from zero.
type Property struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Description string       `yaml:"description" json:"description"`
	Price       int64        `yaml:"price" json:"price"`
	Location    string       `yaml:"location" json:"location"`
	Type        PropertyType `yaml:"type" json:"type"`
	Category    Category     `yaml:"category" json:"category"`
	Image       string       `yaml:"image" json:"image"`
	Bedrooms    *int         `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms   *int         `yaml:"bathrooms" json:"bathrooms"`
	Area        int          `yaml:"area" json:"area"`
	Parking     *bool        `yaml:"parking" json:"parking"`
	Rating      float64      `yaml:"rating" json:"rating"`
	Features    []string     `yaml:"features" json:"features"`
}

// HasParking reports whether the record affirmatively lists parking.
func (p Property) HasParking() bool {
	return p.Parking != nil && *p.Parking
}

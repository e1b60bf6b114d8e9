package entity

// PlaceCategory identifies one toggleable group of nearby places.
type PlaceCategory string

const (
	CategoryMigros       PlaceCategory = "migros"
	CategoryCoop         PlaceCategory = "coop"
	CategoryAldi         PlaceCategory = "aldi"
	CategoryLidl         PlaceCategory = "lidl"
	CategoryHospitals    PlaceCategory = "hospitals"
	CategoryMalls        PlaceCategory = "malls"
	CategoryTrainStation PlaceCategory = "trainStation"
	CategoryBusStop      PlaceCategory = "busStop"
)

// AllCategories lists every known category in display order.
func AllCategories() []PlaceCategory {
	return []PlaceCategory{
		CategoryMigros,
		CategoryCoop,
		CategoryAldi,
		CategoryLidl,
		CategoryHospitals,
		CategoryMalls,
		CategoryTrainStation,
		CategoryBusStop,
	}
}

// Valid reports whether the category is a known one.
func (c PlaceCategory) Valid() bool {
	switch c {
	case CategoryMigros, CategoryCoop, CategoryAldi, CategoryLidl,
		CategoryHospitals, CategoryMalls, CategoryTrainStation, CategoryBusStop:
		return true
	}

	return false
}

// GroceryChain reports whether the category is a named retail chain,
// which is searched by keyword rather than by place type.
func (c PlaceCategory) GroceryChain() bool {
	switch c {
	case CategoryMigros, CategoryCoop, CategoryAldi, CategoryLidl:
		return true
	}

	return false
}

// Place is one provider-sourced point of interest. Instances are created per
// fetch response and superseded wholesale on the next fetch.
type Place struct {
	PlaceID  string        `json:"place_id"`
	Name     string        `json:"name"`
	Category PlaceCategory `json:"category"`
	Location Coordinate    `json:"location"`
	Vicinity string        `json:"vicinity,omitempty"`
	Rating   float64       `json:"rating,omitempty"`
	// Types carries the provider's raw type tags, used for plausibility
	// filtering only.
	Types []string `json:"types,omitempty"`
}

// PlaceCollection maps a category to its places in provider response order.
// Only categories that were enabled at fetch time are present.
type PlaceCollection map[PlaceCategory][]Place

// Clone returns a shallow copy so consumers never share the backing map.
func (pc PlaceCollection) Clone() PlaceCollection {
	if pc == nil {
		return nil
	}

	out := make(PlaceCollection, len(pc))
	for category, places := range pc {
		copied := make([]Place, len(places))
		copy(copied, places)
		out[category] = copied
	}

	return out
}

// Count returns the total number of places across all categories.
func (pc PlaceCollection) Count() int {
	total := 0
	for _, places := range pc {
		total += len(places)
	}

	return total
}

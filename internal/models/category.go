package models

// Category identifies the fixed set of catalog sections a listing
// can be published under.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryClothing    Category = "clothing"
	CategoryVehicles    Category = "vehicles"
	CategorySports      Category = "sports"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategoryToys        Category = "toys"
	CategoryOther       Category = "other"

	// CategoryAll is a filter-only sentinel, never stored on a listing.
	CategoryAll Category = "all"
)

// CategoryInfo carries the presentation attributes of a category.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
}

// Categories lists every publishable category in display order.
var Categories = []CategoryInfo{
	{ID: CategoryElectronics, Name: "Electrónica", Emoji: "📱"},
	{ID: CategoryFurniture, Name: "Muebles", Emoji: "🛋️"},
	{ID: CategoryClothing, Name: "Ropa", Emoji: "👕"},
	{ID: CategoryVehicles, Name: "Vehículos", Emoji: "🚗"},
	{ID: CategorySports, Name: "Deportes", Emoji: "⚽"},
	{ID: CategoryBooks, Name: "Libros", Emoji: "📚"},
	{ID: CategoryHome, Name: "Hogar", Emoji: "🏠"},
	{ID: CategoryToys, Name: "Juguetes", Emoji: "🧸"},
	{ID: CategoryOther, Name: "Otros", Emoji: "📦"},
}

// Valid reports whether c is one of the publishable categories.
// The "all" sentinel is not a valid listing category.
func (c Category) Valid() bool {
	for _, ci := range Categories {
		if ci.ID == c {
			return true
		}
	}
	return false
}

package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mercadito/internal/models"
)

// DefaultListingImage is used when the publisher supplies no images; a
// listing always carries at least one image reference.
const DefaultListingImage = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800"

// CatalogService owns the in-memory listing collection and the active
// search/category filter. Listings are immutable once added, ordered
// newest first, and live only for the lifetime of the process. The service
// performs no input validation; callers validate ListingInput before
// submitting.
type CatalogService struct {
	mu               sync.RWMutex
	listings         []models.Listing
	searchQuery      string
	selectedCategory models.Category
}

// NewCatalogService constructs a catalog pre-populated with the given seed
// listings and an "all"/empty filter.
func NewCatalogService(seed []models.Listing) *CatalogService {
	listings := make([]models.Listing, len(seed))
	copy(listings, seed)
	return &CatalogService{
		listings:         listings,
		selectedCategory: models.CategoryAll,
	}
}

// AddListing assigns an ID and creation time to input, prepends the
// resulting listing, and returns it. Missing images default to a single
// placeholder reference.
func (s *CatalogService) AddListing(input models.ListingInput) models.Listing {
	images := input.Images
	if len(images) == 0 {
		images = []string{DefaultListingImage}
	}

	listing := models.Listing{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Images:      images,
		Location:    input.Location,
		Seller:      input.Seller,
		CreatedAt:   time.Now(),
		Condition:   input.Condition,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append([]models.Listing{listing}, s.listings...)
	return listing
}

// SetSearchQuery replaces the active search text.
func (s *CatalogService) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetSelectedCategory replaces the active category filter. Use
// models.CategoryAll to disable category filtering.
func (s *CatalogService) SetSelectedCategory(category models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
}

// SearchQuery returns the active search text.
func (s *CatalogService) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SelectedCategory returns the active category filter.
func (s *CatalogService) SelectedCategory() models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCategory
}

// Listings returns a snapshot of all listings, newest first.
func (s *CatalogService) Listings() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Filtered returns the listings matching the current filter state: a
// listing is included iff it matches the selected category (or the filter
// is "all") and the search text appears case-insensitively in its title
// or description (or the text is empty). Recomputed on every call.
func (s *CatalogService) Filtered() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(s.searchQuery)

	out := make([]models.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if s.selectedCategory != models.CategoryAll && l.Category != s.selectedCategory {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(l.Title), query) &&
			!strings.Contains(strings.ToLower(l.Description), query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

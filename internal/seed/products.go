// Package seed provides the demo listings the catalog starts with.
package seed

import (
	"time"

	"mercadito/internal/models"
)

// Listings returns the static seed catalog, newest first.
func Listings() []models.Listing {
	return []models.Listing{
		{
			ID:          "1",
			Title:       "iPhone 13 Pro Max",
			Description: "iPhone 13 Pro Max de 256GB en excelente estado. Incluye cargador original y caja. Sin rayones, batería al 95%.",
			Price:       850,
			Category:    models.CategoryElectronics,
			Images: []string{
				"https://images.unsplash.com/photo-1632661674596-df8be070a5c5?w=800",
				"https://images.unsplash.com/photo-1632633728024-e1fd4bef561a?w=800",
			},
			Location:  "Madrid, España",
			Seller:    models.Seller{Name: "Carlos García", Avatar: "https://i.pravatar.cc/150?img=12"},
			CreatedAt: time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC),
			Condition: models.ConditionLikeNew,
		},
		{
			ID:          "2",
			Title:       "Sofá de 3 plazas",
			Description: "Sofá cómodo de 3 plazas en color gris. Perfecto estado, muy poco uso. Medidas: 220cm x 90cm x 85cm.",
			Price:       350,
			Category:    models.CategoryFurniture,
			Images: []string{
				"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800",
			},
			Location:  "Barcelona, España",
			Seller:    models.Seller{Name: "María López", Avatar: "https://i.pravatar.cc/150?img=5"},
			CreatedAt: time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC),
			Condition: models.ConditionGood,
		},
		{
			ID:          "3",
			Title:       "Bicicleta de montaña",
			Description: "Bicicleta de montaña marca Trek, 21 velocidades. Ruedas 26\", suspensión delantera. Ideal para rutas.",
			Price:       280,
			Category:    models.CategorySports,
			Images: []string{
				"https://images.unsplash.com/photo-1576435728678-68d0fbf94e91?w=800",
			},
			Location:  "Valencia, España",
			Seller:    models.Seller{Name: "Juan Martínez", Avatar: "https://i.pravatar.cc/150?img=8"},
			CreatedAt: time.Date(2025, 9, 26, 0, 0, 0, 0, time.UTC),
			Condition: models.ConditionGood,
		},
		{
			ID:          "4",
			Title:       "MacBook Pro 14\" M1",
			Description: "MacBook Pro 14 pulgadas con chip M1 Pro, 16GB RAM, 512GB SSD. Como nuevo, con garantía Apple hasta 2026.",
			Price:       1800,
			Category:    models.CategoryElectronics,
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=800",
			},
			Location:  "Sevilla, España",
			Seller:    models.Seller{Name: "Ana Rodríguez", Avatar: "https://i.pravatar.cc/150?img=9"},
			CreatedAt: time.Date(2025, 9, 25, 0, 0, 0, 0, time.UTC),
			Condition: models.ConditionLikeNew,
		},
		{
			ID:          "5",
			Title:       "Chaqueta de cuero",
			Description: "Chaqueta de cuero genuino, talla M. Color negro, estilo motero. Muy buen estado, apenas usada.",
			Price:       120,
			Category:    models.CategoryClothing,
			Images: []string{
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800",
			},
			Location:  "Bilbao, España",
			Seller:    models.Seller{Name: "Pedro Sánchez", Avatar: "https://i.pravatar.cc/150?img=13"},
			CreatedAt: time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC),
			Condition: models.ConditionGood,
		},
		{
			ID:          "6",
			Title:       "Mesa de comedor",
			Description: "Mesa de comedor extensible de madera maciza. 6-8 personas. Incluye 6 sillas. Perfecto estado.",
			Price:       450,
			Category:    models.CategoryFurniture,
			Images: []string{
				"https://images.unsplash.com/photo-1617806118233-18e1de247200?w=800",
			},
			Location:  "Málaga, España",
			Seller:    models.Seller{Name: "Laura Fernández", Avatar: "https://i.pravatar.cc/150?img=10"},
			CreatedAt: time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC),
			Condition: models.ConditionGood,
		},
	}
}

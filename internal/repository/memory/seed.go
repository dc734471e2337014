package memory

import (
	"time"

	"github.com/hanashop/storefront/internal/domain"
)

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Electronics", Slug: "electronics"},
		{ID: 2, Name: "Fashion", Slug: "fashion"},
		{ID: 3, Name: "Home & Living", Slug: "home-living"},
		{ID: 4, Name: "Sports", Slug: "sports"},
	}
}

func seedProducts() []domain.Product {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	return []domain.Product{
		{
			ID: 1, Name: "Wireless Earbuds Pro", Description: "Active noise cancelling, 30h battery",
			Price: 159000, CategoryID: 1, Category: "Electronics",
			Rating: 4.7, ReviewCount: 1243, StockQuantity: 42,
			CreatedAt: base, UpdatedAt: base,
		},
		{
			ID: 2, Name: "Mechanical Keyboard", Description: "Hot-swappable switches, PBT keycaps",
			Price: 98000, CategoryID: 1, Category: "Electronics",
			Rating: 4.5, ReviewCount: 687, StockQuantity: 18,
			CreatedAt: base.Add(2 * day), UpdatedAt: base.Add(2 * day),
		},
		{
			ID: 3, Name: "USB-C Charging Cable 2m", Description: "100W PD, braided",
			Price: 12900, CategoryID: 1, Category: "Electronics",
			Rating: 4.2, ReviewCount: 3310, StockQuantity: 500,
			CreatedAt: base.Add(5 * day), UpdatedAt: base.Add(5 * day),
		},
		{
			ID: 4, Name: "27-inch 4K Monitor", Description: "IPS panel, HDR400",
			Price: 429000, CategoryID: 1, Category: "Electronics",
			Rating: 4.8, ReviewCount: 412, StockQuantity: 7,
			CreatedAt: base.Add(9 * day), UpdatedAt: base.Add(9 * day),
		},
		{
			ID: 5, Name: "Oversized Cotton Hoodie", Description: "Heavyweight fleece, unisex",
			Price: 45000, CategoryID: 2, Category: "Fashion",
			Rating: 4.4, ReviewCount: 958, StockQuantity: 120,
			CreatedAt: base.Add(3 * day), UpdatedAt: base.Add(3 * day),
		},
		{
			ID: 6, Name: "Canvas Sneakers", Description: "Low-top, rubber sole",
			Price: 39000, CategoryID: 2, Category: "Fashion",
			Rating: 4.1, ReviewCount: 2105, StockQuantity: 64,
			CreatedAt: base.Add(7 * day), UpdatedAt: base.Add(7 * day),
		},
		{
			ID: 7, Name: "Wool Blend Scarf", Description: "Soft-touch, 180cm",
			Price: 19900, CategoryID: 2, Category: "Fashion",
			Rating: 4.6, ReviewCount: 331, StockQuantity: 85,
			CreatedAt: base.Add(11 * day), UpdatedAt: base.Add(11 * day),
		},
		{
			ID: 8, Name: "Ceramic Dinnerware Set", Description: "16-piece, dishwasher safe",
			Price: 89000, CategoryID: 3, Category: "Home & Living",
			Rating: 4.3, ReviewCount: 522, StockQuantity: 23,
			CreatedAt: base.Add(4 * day), UpdatedAt: base.Add(4 * day),
		},
		{
			ID: 9, Name: "Aroma Diffuser", Description: "Ultrasonic, 300ml, auto shutoff",
			Price: 32000, CategoryID: 3, Category: "Home & Living",
			Rating: 4.0, ReviewCount: 1877, StockQuantity: 3,
			CreatedAt: base.Add(13 * day), UpdatedAt: base.Add(13 * day),
		},
		{
			ID: 10, Name: "Memory Foam Pillow", Description: "Cervical support, washable cover",
			Price: 28500, CategoryID: 3, Category: "Home & Living",
			Rating: 4.5, ReviewCount: 4120, StockQuantity: 200,
			CreatedAt: base.Add(16 * day), UpdatedAt: base.Add(16 * day),
		},
		{
			ID: 11, Name: "Yoga Mat 10mm", Description: "Non-slip NBR, strap included",
			Price: 24900, CategoryID: 4, Category: "Sports",
			Rating: 4.2, ReviewCount: 1502, StockQuantity: 90,
			CreatedAt: base.Add(6 * day), UpdatedAt: base.Add(6 * day),
		},
		{
			ID: 12, Name: "Adjustable Dumbbell Set", Description: "2 x 2.5-24kg",
			Price: 189000, CategoryID: 4, Category: "Sports",
			Rating: 4.9, ReviewCount: 268, StockQuantity: 0,
			CreatedAt: base.Add(20 * day), UpdatedAt: base.Add(20 * day),
		},
	}
}

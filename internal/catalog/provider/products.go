package provider

import "github.com/emre/storefront/internal/catalog/domain"

// catalog is the fixed product list served by the static provider
var catalog = []domain.Product{
	{
		ID:          "1",
		Name:        "iPhone 15 Pro",
		Price:       999.99,
		Description: "The most advanced iPhone yet with titanium design and A17 Pro chip.",
		Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
		Images: []string{
			"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
			"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400",
			"https://images.unsplash.com/photo-1580910051074-3eb694886505?w=400",
		},
		Specifications: map[string]string{
			"Display": "6.1-inch Super Retina XDR",
			"Chip":    "A17 Pro",
			"Storage": "128GB",
			"Camera":  "48MP Main + 12MP Ultra Wide",
			"Battery": "Up to 23 hours video playback",
		},
		Category: "Electronics",
		Rating:   4.8,
		Reviews:  1250,
		InStock:  true,
	},
	{
		ID:          "2",
		Name:        "MacBook Air M2",
		Price:       1199.99,
		Description: "Supercharged by M2 chip. Incredibly thin and light design.",
		Image:       "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400",
		Images: []string{
			"https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400",
			"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400",
			"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400",
		},
		Specifications: map[string]string{
			"Display": "13.6-inch Liquid Retina",
			"Chip":    "Apple M2",
			"Memory":  "8GB unified memory",
			"Storage": "256GB SSD",
			"Battery": "Up to 18 hours",
		},
		Category: "Electronics",
		Rating:   4.7,
		Reviews:  890,
		InStock:  true,
	},
	{
		ID:          "3",
		Name:        "AirPods Pro (2nd Gen)",
		Price:       249.99,
		Description: "Active Noise Cancellation and Adaptive Transparency.",
		Image:       "https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?w=400",
		Images: []string{
			"https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?w=400",
			"https://images.unsplash.com/photo-1588423771073-b8903fbb85b5?w=400",
		},
		Specifications: map[string]string{
			"Audio":              "Adaptive Audio",
			"Noise Cancellation": "Active Noise Cancellation",
			"Battery":            "Up to 6 hours listening time",
			"Charging":           "MagSafe Charging Case",
			"Water Resistance":   "IPX4",
		},
		Category: "Audio",
		Rating:   4.6,
		Reviews:  2100,
		InStock:  true,
	},
	{
		ID:          "4",
		Name:        "iPad Pro 12.9\"",
		Price:       1099.99,
		Description: "The ultimate iPad experience with M2 chip and Liquid Retina XDR display.",
		Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400",
		Images: []string{
			"https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400",
			"https://images.unsplash.com/photo-1561154464-82e9adf32764?w=400",
		},
		Specifications: map[string]string{
			"Display":      "12.9-inch Liquid Retina XDR",
			"Chip":         "Apple M2",
			"Storage":      "128GB",
			"Camera":       "12MP Wide + 10MP Ultra Wide",
			"Connectivity": "Wi-Fi 6E + 5G",
		},
		Category: "Electronics",
		Rating:   4.9,
		Reviews:  750,
		InStock:  true,
	},
	{
		ID:          "5",
		Name:        "Apple Watch Series 9",
		Price:       399.99,
		Description: "Your essential companion for a healthy life with advanced health features.",
		Image:       "https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=400",
		Images: []string{
			"https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=400",
			"https://images.unsplash.com/photo-1510017098667-27dfc7150acb?w=400",
		},
		Specifications: map[string]string{
			"Display":          "45mm Always-On Retina",
			"Chip":             "S9 SiP",
			"Health":           "Blood Oxygen + ECG",
			"Battery":          "Up to 18 hours",
			"Water Resistance": "50 meters",
		},
		Category: "Wearables",
		Rating:   4.5,
		Reviews:  1680,
		InStock:  true,
	},
}

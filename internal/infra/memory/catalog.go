package memory

type Product struct {
	ID    string
	Name  string
	Price float64
}

// DemoProducts seed the in-memory backends used in development.
var DemoProducts = []Product{
	{ID: "soil-123", Name: "Standard Potting Soil", Price: 12.99},
	{ID: "fert-456", Name: "General Purpose Fertilizer", Price: 12.99},
	{ID: "soil-456", Name: "Bloom Booster Potting Mix", Price: 14.99},
	{ID: "fert-789", Name: "Flower Power Fertilizer", Price: 9.99},
}

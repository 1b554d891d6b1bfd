package cart

import "github.com/shopspring/decimal"

// Cart mirrors the one-to-one cart row plus its product set.
type Cart struct {
	ID       int64         `json:"id"`
	UserID   int64         `json:"user"`
	Products []CartProduct `json:"products"`
}

// CartProduct is the catalog snapshot joined into a cart response.
type CartProduct struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductNames keeps the response shape the clients already consume.
func (c *Cart) ProductNames() []string {
	names := make([]string, 0, len(c.Products))
	for _, p := range c.Products {
		names = append(names, p.Name)
	}
	return names
}

// ProductIDs returns the product set as ids.
func (c *Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.Products))
	for _, p := range c.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

package entities

// CartEntry is one (product, quantity) pair held in a browsing session's
// cart. Name, price and image are a display snapshot refreshed from the
// catalog on every cart read; the catalog row stays authoritative.
type CartEntry struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
}

type Cart []CartEntry

func (c Cart) Subtotal() int {
	total := 0
	for _, e := range c {
		total += e.Price * e.Quantity
	}
	return total
}

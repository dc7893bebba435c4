package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type Product struct {
	ID          string
	Name        string
	Price       int
	Available   bool
	ImageURL    string
	Description string
	CreatedAt   time.Time
}

// ProductInput carries the admin-editable fields of a product.
type ProductInput struct {
	Name        string
	Price       int
	Available   bool
	ImageURL    string
	Description string
}

var ErrProductNotFound = errors.New("product not found")

// ProductList is the cacheable form of a catalog listing.
type ProductList []Product

func (l ProductList) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *ProductList) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(l)
}

func init() {
	gob.Register(Product{})
}

package products

import "github.com/northwind-api/northwind-api/internal/schema"

// Product is a catalog item with a storage-generated identifier. Supplier and
// category references are opaque integers; they are not enforced as foreign
// keys here.
type Product struct {
	ID              int64           `json:"ProductID" db:"id"`
	Name            string          `json:"ProductName" db:"name"`
	SupplierID      *int64          `json:"SupplierID,omitempty" db:"supplier_id"`
	CategoryID      *int64          `json:"CategoryID,omitempty" db:"category_id"`
	QuantityPerUnit *string         `json:"QuantityPerUnit,omitempty" db:"quantity_per_unit"`
	UnitPrice       *schema.Decimal `json:"UnitPrice,omitempty" db:"unit_price"`
	UnitsInStock    *int16          `json:"UnitsInStock,omitempty" db:"units_in_stock"`
	UnitsOnOrder    *int16          `json:"UnitsOnOrder,omitempty" db:"units_on_order"`
	ReorderLevel    *int16          `json:"ReorderLevel,omitempty" db:"reorder_level"`
	Discontinued    bool            `json:"Discontinued" db:"discontinued"`
}

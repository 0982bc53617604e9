package orders

import "github.com/northwind-api/northwind-api/internal/schema"

// Order is a sale placed by a customer. The shipping address is a snapshot
// taken at order time and does not follow later customer edits.
type Order struct {
	ID             int64           `json:"OrderID" db:"id"`
	CustomerID     string          `json:"CustomerID" db:"customer_id"`
	EmployeeID     *int64          `json:"EmployeeID,omitempty" db:"employee_id"`
	OrderDate      schema.Date     `json:"OrderDate" db:"order_date"`
	RequiredDate   *schema.Date    `json:"RequiredDate,omitempty" db:"required_date"`
	ShippedDate    *schema.Date    `json:"ShippedDate,omitempty" db:"shipped_date"`
	ShipVia        *int64          `json:"ShipVia,omitempty" db:"ship_via"`
	Freight        *schema.Decimal `json:"Freight,omitempty" db:"freight"`
	ShipName       *string         `json:"ShipName,omitempty" db:"ship_name"`
	ShipAddress    *string         `json:"ShipAddress,omitempty" db:"ship_address"`
	ShipCity       *string         `json:"ShipCity,omitempty" db:"ship_city"`
	ShipRegion     *string         `json:"ShipRegion,omitempty" db:"ship_region"`
	ShipPostalCode *string         `json:"ShipPostalCode,omitempty" db:"ship_postal_code"`
	ShipCountry    *string         `json:"ShipCountry,omitempty" db:"ship_country"`
	Details        []OrderDetail   `json:"details" db:"-"`
}

// OrderDetail is one line item of an order, identified by the
// (order, product) pair.
type OrderDetail struct {
	OrderID   int64          `json:"-" db:"order_id"`
	ProductID int64          `json:"ProductID" db:"product_id"`
	UnitPrice schema.Decimal `json:"UnitPrice" db:"unit_price"`
	Quantity  int16          `json:"Quantity" db:"quantity"`
	Discount  schema.Decimal `json:"Discount" db:"discount"`

	// Product is a display projection resolved on read; it is never written
	// through this entity.
	Product *ProductRef `json:"product,omitempty" db:"-"`
}

// ProductRef is the cut-down product projection embedded in detail payloads.
type ProductRef struct {
	ID   int64  `json:"ProductID"`
	Name string `json:"ProductName"`
}

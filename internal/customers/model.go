package customers

// Customer is a buyer account keyed by a caller-supplied 5-character code.
// JSON field names follow the published API contract.
type Customer struct {
	ID           string  `json:"CustomerID" db:"id"`
	CompanyName  string  `json:"CompanyName" db:"company_name"`
	ContactName  *string `json:"ContactName,omitempty" db:"contact_name"`
	ContactTitle *string `json:"ContactTitle,omitempty" db:"contact_title"`
	Address      *string `json:"Address,omitempty" db:"address"`
	City         *string `json:"City,omitempty" db:"city"`
	Region       *string `json:"Region,omitempty" db:"region"`
	PostalCode   *string `json:"PostalCode,omitempty" db:"postal_code"`
	Country      *string `json:"Country,omitempty" db:"country"`
	Phone        *string `json:"Phone,omitempty" db:"phone"`
	Fax          *string `json:"Fax,omitempty" db:"fax"`
}

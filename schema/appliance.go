package schema

type ApplianceModel struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type ApplianceCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Appliance is a customer-owned unit a service request refers to. Owner
// and purchase fields are only populated on the admin listing.
type Appliance struct {
	ID           string             `json:"_id"`
	SerialNumber string             `json:"serial_number"`
	Model        *ApplianceModel    `json:"model,omitempty"`
	Category     *ApplianceCategory `json:"category,omitempty"`

	Owner        *Account `json:"user,omitempty"`
	PurchaseDate string   `json:"purchase_date,omitempty"`
	InvoiceURL   string   `json:"invoice_url,omitempty"`
}

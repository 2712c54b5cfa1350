package domain

// Customer is the owner record served by the customer directory.
type Customer struct {
	ID             string          `json:"id"`
	DocumentNumber string          `json:"documentNumber"`
	Type           CustomerType    `json:"type"`
	Profile        CustomerProfile `json:"profile"`
	Name           string          `json:"name"`
}

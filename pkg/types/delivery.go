package types

// DeliveryDetails carries the free-text address fields collected at
// checkout. Fields are checked for presence only; format validation is
// left to the backend.
type DeliveryDetails struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
}

package domain

// Remittance is a COD payout batch issued by the backend.
type Remittance struct {
	ID                string  `json:"_id"`
	RemittanceID      string  `json:"remittanceId"`
	RemittanceDate    string  `json:"remittanceDate"`
	RemittanceAmount  float64 `json:"remittanceAmount"`
	RemittanceStatus  string  `json:"remittanceStatus"`
	BankTransactionID string  `json:"BankTransactionId"`
	Orders            []Order `json:"orders,omitempty"`
}

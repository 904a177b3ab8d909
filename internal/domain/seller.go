package domain

// CompanyProfile is the company field group of a seller profile.
type CompanyProfile struct {
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	CompanyID    string `json:"companyId,omitempty"`
	Website      string `json:"website"`
}

// BankDetails is the payout field group of a seller profile.
type BankDetails struct {
	AccHolderName string `json:"accHolderName"`
	AccType       string `json:"accType"`
	AccNumber     string `json:"accNumber"`
	IFSCNumber    string `json:"ifscNumber"`
}

// GSTInvoice is the tax field group of a seller profile.
type GSTInvoice struct {
	GSTIN     string `json:"gstin"`
	DeductTDS string `json:"deductTDS"`
	TAN       string `json:"tan"`
}

// BillingAddress is the billing field group of a seller profile.
type BillingAddress struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Pincode      string `json:"pincode"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
}

// KYCDetails is the verification field group of a seller profile.
type KYCDetails struct {
	BusinessType string `json:"businessType,omitempty"`
	GSTIN        string `json:"gstin,omitempty"`
	PAN          string `json:"pan,omitempty"`
	Submitted    bool   `json:"submitted,omitempty"`
	Verified     bool   `json:"verified,omitempty"`
}

// Seller is the seller profile aggregate. Field groups are mutated one at a
// time via discrete update operations; the backend owns the merged record.
type Seller struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	WalletBalance  float64        `json:"walletBalance,omitempty"`
	EntityType     string         `json:"entityType,omitempty"`
	IsVerified     bool           `json:"isVerified"`
	CompanyProfile CompanyProfile `json:"companyProfile"`
	BankDetails    BankDetails    `json:"bankDetails"`
	GSTInvoice     GSTInvoice     `json:"gstInvoice"`
	BillingAddress BillingAddress `json:"billingAddress"`
	KYCDetails     KYCDetails     `json:"kycDetails"`
}

package logistics

// Wire payloads for the logistics API. Field names follow the backend's JSON
// contract exactly; the console's typed builders produce these.

// CustomerPayload is the consignee block of an order creation request.
type CustomerPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode int    `json:"pincode"`
}

// ProductPayload is the product block of an order creation request.
type ProductPayload struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	HSNCode      string  `json:"hsn_code"`
	Quantity     int     `json:"quantity"`
	TaxRate      float64 `json:"taxRate"`
	TaxableValue float64 `json:"taxableValue"`
}

// OrderPayload is the POST /order/b2c request body.
type OrderPayload struct {
	OrderReferenceID   string          `json:"order_reference_id"`
	PaymentMode        int             `json:"payment_mode"`
	OrderWeight        float64         `json:"orderWeight"`
	OrderWeightUnit    string          `json:"orderWeightUnit"`
	OrderInvoiceDate   string          `json:"order_invoice_date"`
	OrderInvoiceNumber string          `json:"order_invoice_number"`
	NumberOfBoxes      int             `json:"numberOfBoxes"`
	OrderSizeUnit      string          `json:"orderSizeUnit"`
	OrderBoxHeight     float64         `json:"orderBoxHeight"`
	OrderBoxWidth      float64         `json:"orderBoxWidth"`
	OrderBoxLength     float64         `json:"orderBoxLength"`
	AmountToCollect    float64         `json:"amount2Collect"`
	CustomerDetails    CustomerPayload `json:"customerDetails"`
	ProductDetails     ProductPayload  `json:"productDetails"`
	PickupAddress      string          `json:"pickupAddress"`
}

// ShipmentPayload is the POST /shipment request body. OrderType is always 0
// for B2C shipments.
type ShipmentPayload struct {
	OrderID   string `json:"orderId"`
	CarrierID int64  `json:"carrierId"`
	OrderType int    `json:"orderType"`
}

// CancelPayload is the POST /shipment/cancel request body.
type CancelPayload struct {
	OrderID string `json:"orderId"`
	Type    string `json:"type"`
}

// ManifestPayload is the POST /shipment/manifest request body.
type ManifestPayload struct {
	OrderID    string `json:"orderId"`
	PickupDate string `json:"pickupDate"`
}

// PincodePayload is the POST /hub/pincode request body.
type PincodePayload struct {
	Pincode int `json:"pincode"`
}

// HubPayload is the POST /hub request body.
type HubPayload struct {
	Name              string `json:"name"`
	ContactPersonName string `json:"contactPersonName"`
	Email             string `json:"email,omitempty"`
	Pincode           string `json:"pincode"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2"`
	Phone             string `json:"phone"`
	City              string `json:"city"`
	State             string `json:"state"`
}

// UpdateHubPayload is the PUT /hub/{id} request body. The backend expects
// every field as a string here; the hub id travels in the URL path.
type UpdateHubPayload struct {
	FacilityName      string `json:"facilityName"`
	ContactPersonName string `json:"contactPersonName"`
	PickupLocContact  string `json:"pickupLocContact"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	Country           string `json:"country"`
	Pincode           string `json:"pincode"`
	City              string `json:"city"`
	State             string `json:"state"`
	IsRTOAddressSame  bool   `json:"isRTOAddressSame"`
	RTOAddress        string `json:"rtoAddress"`
	RTOCity           string `json:"rtoCity"`
	RTOState          string `json:"rtoState"`
	RTOPincode        string `json:"rtoPincode"`
}

// Seller update bodies wrap exactly one field group in a named sub-object,
// matching the backend's PUT /seller contract.

// CompanyProfileBody wraps the company profile field group.
type CompanyProfileBody struct {
	CompanyProfile CompanyProfileFields `json:"companyProfile"`
}

// CompanyProfileFields is the company profile field group.
type CompanyProfileFields struct {
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	Website      string `json:"website"`
}

// BankDetailsBody wraps the bank details field group.
type BankDetailsBody struct {
	BankDetails BankDetailsFields `json:"bankDetails"`
}

// BankDetailsFields is the bank details field group.
type BankDetailsFields struct {
	AccHolderName string `json:"accHolderName"`
	AccType       string `json:"accType"`
	AccNumber     string `json:"accNumber"`
	IFSCNumber    string `json:"ifscNumber"`
}

// BillingAddressBody wraps the billing address field group.
type BillingAddressBody struct {
	BillingAddress BillingAddressFields `json:"billingAddress"`
}

// BillingAddressFields is the billing address field group.
type BillingAddressFields struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Pincode      string `json:"pincode"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
}

// GSTInvoiceBody wraps the GST/invoicing field group.
type GSTInvoiceBody struct {
	GSTInvoice GSTInvoiceFields `json:"gstInvoice"`
}

// GSTInvoiceFields is the GST/invoicing field group.
type GSTInvoiceFields struct {
	GSTIN     string `json:"gstin"`
	TAN       string `json:"tan"`
	DeductTDS string `json:"deductTDS"`
}

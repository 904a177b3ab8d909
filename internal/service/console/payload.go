package console

import (
	"fmt"
	"strconv"
	"strings"

	"seller-console/internal/apperr"
	"seller-console/internal/domain"
	"seller-console/internal/gateway/logistics"
)

// Drafts carry form input as strings, the way it arrives from the UI. The
// builders below convert them to the wire types the backend expects and fail
// fast on malformed input instead of silently stringifying.

// CustomerFormDraft is the consignee half of the customer draft form.
type CustomerFormDraft struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Pincode  string `json:"pincode"`
}

// SellerFormDraft is the seller half of the customer draft form.
type SellerFormDraft struct {
	Name           string `json:"name"`
	GSTNo          string `json:"gstNo,omitempty"`
	IsAddressAdded bool   `json:"isSellerAddressAdded,omitempty"`
	Pincode        string `json:"pincode,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
}

// CustomerDraft is the transient, in-memory merged form state pending order
// submission.
type CustomerDraft struct {
	SellerForm   SellerFormDraft   `json:"sellerForm"`
	CustomerForm CustomerFormDraft `json:"customerForm"`
}

// ProductDraft is the product block of an order draft.
type ProductDraft struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	HSNCode      string `json:"hsn_code"`
	Quantity     string `json:"quantity"`
	TaxRate      string `json:"taxRate"`
	TaxableValue string `json:"taxableValue"`
}

// OrderDraft is the order creation form. Numeric fields arrive as strings;
// PaymentMode is the raw form value ("COD" or a prepaid label).
type OrderDraft struct {
	OrderReferenceID   string             `json:"order_reference_id"`
	PaymentMode        string             `json:"payment_mode"`
	OrderWeight        string             `json:"orderWeight"`
	OrderInvoiceDate   string             `json:"order_invoice_date"`
	OrderInvoiceNumber string             `json:"order_invoice_number"`
	NumberOfBoxes      string             `json:"numberOfBoxes"`
	OrderSizeUnit      string             `json:"orderSizeUnit"`
	OrderBoxHeight     string             `json:"orderBoxHeight"`
	OrderBoxWidth      string             `json:"orderBoxWidth"`
	OrderBoxLength     string             `json:"orderBoxLength"`
	AmountToCollect    string             `json:"amount2Collect"`
	Customer           *CustomerFormDraft `json:"customerDetails,omitempty"`
	Product            ProductDraft       `json:"productDetails"`
	PickupAddress      string             `json:"pickupAddress"`
}

const orderWeightUnit = "kg"

// BuildOrderPayload converts an order draft into the wire payload. When the
// draft carries no customer block, fallback (the session's customer form) is
// used instead. Malformed numeric input fails with apperr.ErrInvalid.
func BuildOrderPayload(d OrderDraft, fallback CustomerFormDraft) (logistics.OrderPayload, error) {
	var (
		p   logistics.OrderPayload
		err error
	)

	customer := fallback
	if d.Customer != nil {
		customer = *d.Customer
	}

	p.OrderReferenceID = d.OrderReferenceID
	p.PaymentMode = int(domain.ParsePaymentMode(d.PaymentMode))
	p.OrderWeightUnit = orderWeightUnit
	p.OrderInvoiceDate = d.OrderInvoiceDate
	p.OrderInvoiceNumber = d.OrderInvoiceNumber
	p.OrderSizeUnit = d.OrderSizeUnit
	p.PickupAddress = d.PickupAddress

	if p.OrderWeight, err = parseFloat("orderWeight", d.OrderWeight); err != nil {
		return logistics.OrderPayload{}, err
	}
	if p.NumberOfBoxes, err = parseInt("numberOfBoxes", d.NumberOfBoxes); err != nil {
		return logistics.OrderPayload{}, err
	}
	if p.OrderBoxHeight, err = parseFloat("orderBoxHeight", d.OrderBoxHeight); err != nil {
		return logistics.OrderPayload{}, err
	}
	if p.OrderBoxWidth, err = parseFloat("orderBoxWidth", d.OrderBoxWidth); err != nil {
		return logistics.OrderPayload{}, err
	}
	if p.OrderBoxLength, err = parseFloat("orderBoxLength", d.OrderBoxLength); err != nil {
		return logistics.OrderPayload{}, err
	}
	if p.AmountToCollect, err = parseFloat("amount2Collect", d.AmountToCollect); err != nil {
		return logistics.OrderPayload{}, err
	}

	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Phone) == "" {
		return logistics.OrderPayload{}, fmt.Errorf("customer name and phone required: %w", apperr.ErrInvalid)
	}
	pincode, err := parseInt("customer pincode", customer.Pincode)
	if err != nil {
		return logistics.OrderPayload{}, err
	}
	p.CustomerDetails = logistics.CustomerPayload{
		Name:    customer.Name,
		Phone:   customer.Phone,
		Address: customer.Address,
		Pincode: pincode,
	}

	if p.ProductDetails, err = buildProduct(d.Product); err != nil {
		return logistics.OrderPayload{}, err
	}
	return p, nil
}

func buildProduct(d ProductDraft) (logistics.ProductPayload, error) {
	qty, err := parseInt("product quantity", d.Quantity)
	if err != nil {
		return logistics.ProductPayload{}, err
	}
	taxRate, err := parseFloat("product taxRate", d.TaxRate)
	if err != nil {
		return logistics.ProductPayload{}, err
	}
	taxable, err := parseFloat("product taxableValue", d.TaxableValue)
	if err != nil {
		return logistics.ProductPayload{}, err
	}
	return logistics.ProductPayload{
		Name:         d.Name,
		Category:     d.Category,
		HSNCode:      d.HSNCode,
		Quantity:     qty,
		TaxRate:      taxRate,
		TaxableValue: taxable,
	}, nil
}

// CompanyProfileDraft is the company profile settings form.
type CompanyProfileDraft struct {
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	Website      string `json:"website"`
}

// BuildCompanyProfileBody validates the company email before any request is
// built; a malformed email never reaches the backend.
func BuildCompanyProfileBody(d CompanyProfileDraft) (logistics.CompanyProfileBody, error) {
	if !strings.Contains(d.CompanyEmail, "@") {
		return logistics.CompanyProfileBody{}, fmt.Errorf("company email: %w", apperr.ErrInvalid)
	}
	return logistics.CompanyProfileBody{
		CompanyProfile: logistics.CompanyProfileFields{
			CompanyName:  d.CompanyName,
			CompanyEmail: d.CompanyEmail,
			Website:      d.Website,
		},
	}, nil
}

// HubDraft is the add-pickup-location form.
type HubDraft struct {
	Name              string `json:"name"`
	ContactPersonName string `json:"contactPersonName"`
	Email             string `json:"email,omitempty"`
	Pincode           string `json:"pincode"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2,omitempty"`
	Phone             string `json:"phone"`
	City              string `json:"city"`
	State             string `json:"state"`
}

// BuildHubPayload validates the required hub fields and checks the pincode is
// numeric without losing its string wire encoding.
func BuildHubPayload(d HubDraft) (logistics.HubPayload, error) {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.ContactPersonName) == "" {
		return logistics.HubPayload{}, fmt.Errorf("hub name and contact person required: %w", apperr.ErrInvalid)
	}
	if _, err := parseInt("hub pincode", d.Pincode); err != nil {
		return logistics.HubPayload{}, err
	}
	return logistics.HubPayload{
		Name:              d.Name,
		ContactPersonName: d.ContactPersonName,
		Email:             d.Email,
		Pincode:           d.Pincode,
		Address1:          d.Address1,
		Address2:          d.Address2,
		Phone:             d.Phone,
		City:              d.City,
		State:             d.State,
	}, nil
}

// PickupLocationDraft is the edit-pickup-location form.
type PickupLocationDraft struct {
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

// BuildUpdateHubPayload validates the edit-pickup-location form.
func BuildUpdateHubPayload(d PickupLocationDraft) (logistics.UpdateHubPayload, error) {
	if strings.TrimSpace(d.FacilityName) == "" {
		return logistics.UpdateHubPayload{}, fmt.Errorf("facility name required: %w", apperr.ErrInvalid)
	}
	return logistics.UpdateHubPayload{
		FacilityName:      d.FacilityName,
		ContactPersonName: d.ContactPersonName,
		PickupLocContact:  d.PickupLocContact,
		Email:             d.Email,
		Address:           d.Address,
		Country:           d.Country,
		Pincode:           d.Pincode,
		City:              d.City,
		State:             d.State,
		IsRTOAddressSame:  d.IsRTOAddressSame,
		RTOAddress:        d.RTOAddress,
		RTOCity:           d.RTOCity,
		RTOState:          d.RTOState,
		RTOPincode:        d.RTOPincode,
	}, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, apperr.ErrInvalid)
	}
	return v, nil
}

func parseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, apperr.ErrInvalid)
	}
	return v, nil
}

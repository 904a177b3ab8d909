package domain

// PaymentMode is the wire encoding of an order's payment mode.
type PaymentMode int

// List of possible payment modes
const (
	PaymentPrepaid PaymentMode = 0
	PaymentCOD     PaymentMode = 1
)

// ParsePaymentMode maps the form value to the wire enum: "COD" → 1, else 0.
func ParsePaymentMode(s string) PaymentMode {
	if s == "COD" {
		return PaymentCOD
	}
	return PaymentPrepaid
}

// Bucket is an integer status code representing an order's lifecycle stage.
type Bucket int

// List of order lifecycle buckets
const (
	BucketNew         Bucket = 0
	BucketReadyToShip Bucket = 1
	BucketInTransit   Bucket = 2
	BucketDelivered   Bucket = 3
	BucketRTO         Bucket = 4
	BucketCancelled   Bucket = 5
)

var allowedBuckets = [...]Bucket{
	BucketNew, BucketReadyToShip, BucketInTransit,
	BucketDelivered, BucketRTO, BucketCancelled,
}

// Valid checks if the Bucket is a known lifecycle stage.
func (b Bucket) Valid() bool {
	for _, v := range allowedBuckets {
		if b == v {
			return true
		}
	}
	return false
}

// CustomerDetails is the consignee block of an order.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode int    `json:"pincode"`
}

// ProductDetails is the product block of an order.
type ProductDetails struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	HSNCode      string  `json:"hsn_code"`
	Quantity     int     `json:"quantity"`
	TaxRate      float64 `json:"taxRate"`
	TaxableValue float64 `json:"taxableValue"`
}

// OrderStage is one recorded lifecycle transition of an order.
type OrderStage struct {
	Stage         int    `json:"stage"`
	StageDateTime string `json:"stageDateTime"`
	Action        string `json:"action"`
}

// Order represents a B2C order as issued by the backend.
type Order struct {
	ID                 string           `json:"_id"`
	AWB                string           `json:"awb,omitempty"`
	CarrierName        string           `json:"carrierName,omitempty"`
	SellerID           string           `json:"sellerId"`
	Bucket             Bucket           `json:"bucket"`
	Stages             []OrderStage     `json:"orderStages,omitempty"`
	PickupAddress      *Hub             `json:"pickupAddress,omitempty"`
	OrderReferenceID   string           `json:"order_reference_id"`
	PaymentMode        PaymentMode      `json:"payment_mode"`
	OrderInvoiceDate   string           `json:"order_invoice_date,omitempty"`
	OrderInvoiceNumber string           `json:"order_invoice_number,omitempty"`
	NumberOfBoxes      int              `json:"numberOfBoxes"`
	OrderBoxHeight     float64          `json:"orderBoxHeight"`
	OrderBoxWidth      float64          `json:"orderBoxWidth"`
	OrderBoxLength     float64          `json:"orderBoxLength"`
	OrderSizeUnit      string           `json:"orderSizeUnit"`
	OrderWeight        float64          `json:"orderWeight"`
	OrderWeightUnit    string           `json:"orderWeightUnit"`
	AmountToCollect    float64          `json:"amount2Collect"`
	CustomerDetails    *CustomerDetails `json:"customerDetails,omitempty"`
	ProductDetails     *ProductDetails  `json:"productDetails,omitempty"`
	CreatedAt          string           `json:"createdAt,omitempty"`
	UpdatedAt          string           `json:"updatedAt,omitempty"`
}

// DashboardSummary is the aggregate card data for the seller dashboard.
type DashboardSummary struct {
	TotalOrders    int     `json:"totalOrders"`
	Shipped        int     `json:"shipped"`
	Delivered      int     `json:"delivered"`
	RTO            int     `json:"rto"`
	WalletBalance  float64 `json:"walletBalance"`
	PendingPickups int     `json:"pendingPickups"`
}

package domain

// CourierQuote is a carrier's offered price/zone/pickup for a specific order.
type CourierQuote struct {
	Name           string  `json:"name"`
	NickName       string  `json:"nickName"`
	MinWeight      float64 `json:"minWeight"`
	Charge         float64 `json:"charge"`
	Type           string  `json:"type,omitempty"`
	ExpectedPickup string  `json:"expectedPickup"`
	OrderWeight    float64 `json:"orderWeight"`
	CarrierID      int64   `json:"carrierID"`
	OrderZone      string  `json:"order_zone"`
}

// QuoteSet is the ephemeral result of a courier availability request: the
// order it was quoted for plus every carrier offer. It is never persisted
// beyond the viewing session.
type QuoteSet struct {
	OrderDetails Order          `json:"orderDetails"`
	Partners     []CourierQuote `json:"courierPartner"`
}

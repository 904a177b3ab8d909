package domain

// Hub is a seller-owned pickup/return facility record.
type Hub struct {
	ID                string `json:"_id"`
	SellerID          string `json:"sellerId,omitempty"`
	Name              string `json:"name"`
	ContactPersonName string `json:"contactPersonName"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2,omitempty"`
	City              string `json:"city"`
	State             string `json:"state"`
	Pincode           int    `json:"pincode"`
	IsRTOAddressSame  bool   `json:"isRTOAddressSame,omitempty"`
	RTOAddress        string `json:"rtoAddress,omitempty"`
	RTOCity           string `json:"rtoCity,omitempty"`
	RTOState          string `json:"rtoState,omitempty"`
	RTOPincode        int    `json:"rtoPincode,omitempty"`
}

// Location is a resolved city/state pair for a postal code.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

package schema

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddressDetails is the manual-address payload. Manual is always true on
// the wire: it tells the backend the coordinates were derived by
// geocoding rather than placed by the user, so pincode-only matching may
// apply when they are the (0,0) sentinel.
type AddressDetails struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Manual  bool   `json:"manual"`
}

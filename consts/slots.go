package consts

// Visit slots offered at request creation. The backend stores the label
// verbatim.
var Slots = []string{
	"Morning (9 AM - 12 PM)",
	"Afternoon (12 PM - 3 PM)",
	"Evening (5 PM - 7 PM)",
	"Night (7 PM - 9 PM)",
}

// DefaultCountry scopes geocoding lookups.
const DefaultCountry = "India"

// ValidSlot reports whether s is one of the offered visit slots.
func ValidSlot(s string) bool {
	for _, slot := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

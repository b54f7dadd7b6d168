package domain

// AddressLabel classifies a saved shipping address.
type AddressLabel string

const (
	AddressLabelHome  AddressLabel = "Home"
	AddressLabelWork  AddressLabel = "Work"
	AddressLabelOther AddressLabel = "Other"
)

// ShippingAddress is a saved address owned by the backend. The wizard only
// ever holds a read-only copy; address CRUD happens on the address screen.
type ShippingAddress struct {
	ID            string       `json:"id"`
	Label         AddressLabel `json:"type"`
	Address       string       `json:"address"`
	City          string       `json:"city"`
	State         string       `json:"state"`
	Zip           string       `json:"zip"`
	Country       string       `json:"country"`
	PhoneNumber01 string       `json:"phone_number_01"`
	PhoneNumber02 string       `json:"phone_number_02,omitempty"`
	IsDefault     bool         `json:"isDefault"`
}

// CheckoutDraft is the shipping form the user is editing. It is a superset
// of ShippingAddress fields plus contact details, created empty or
// pre-filled from a selected address, and discarded when the wizard ends.
type CheckoutDraft struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// FillFrom copies the address portion of a saved address into the draft,
// leaving contact fields (email, names) untouched.
func (d *CheckoutDraft) FillFrom(a *ShippingAddress) {
	d.Address = a.Address
	d.City = a.City
	d.State = a.State
	d.Zip = a.Zip
	d.Country = a.Country
	d.Phone = a.PhoneNumber01
}

// ClearAddressFields resets the address portion of the draft, keeping
// contact fields.
func (d *CheckoutDraft) ClearAddressFields() {
	d.Address = ""
	d.City = ""
	d.State = ""
	d.Zip = ""
	d.Country = ""
	d.Phone = ""
}

// AddressComplete reports whether the draft carries enough of an address
// to ship to.
func (d *CheckoutDraft) AddressComplete() bool {
	return d.Address != "" && d.City != "" && d.State != "" && d.Zip != ""
}

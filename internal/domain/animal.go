package domain

// Animal represents a single adoptable animal as returned by the listings provider
type Animal struct {
	ID             int64        `json:"id"`
	OrganizationID string       `json:"organizationId,omitempty"`
	URL            string       `json:"url"`
	Type           string       `json:"type"`
	Breed          Breed        `json:"breed"`
	Age            string       `json:"age"`
	Gender         string       `json:"gender"`
	Size           string       `json:"size"`
	Status         string       `json:"status"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	PhotoURLs      []string     `json:"photoUrls"`
	Attributes     Attributes   `json:"attributes"`
	Environment    Environment  `json:"environment"`
	Tags           []string     `json:"tags"`
	Contact        Contact      `json:"contact"`
	Distance       *float64     `json:"distance,omitempty"` // miles from the searched location, nil when no location given
}

// Breed holds the breed information for an animal
type Breed struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Mixed     bool   `json:"mixed"`
	Unknown   bool   `json:"unknown"`
}

// Attributes holds health/training flags for an animal.
// Declawed is only meaningful for cats and stays nil otherwise.
type Attributes struct {
	SpayedNeutered bool  `json:"spayedNeutered"`
	HouseTrained   bool  `json:"houseTrained"`
	Declawed       *bool `json:"declawed,omitempty"`
	SpecialNeeds   bool  `json:"specialNeeds"`
	ShotsCurrent   bool  `json:"shotsCurrent"`
}

// Environment holds compatibility flags. Each is tri-state:
// true/false when the shelter reported it, nil when unknown.
type Environment struct {
	Children *bool `json:"children"`
	Dogs     *bool `json:"dogs"`
	Cats     *bool `json:"cats"`
}

// Contact holds contact information, every field independently optional
type Contact struct {
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Address Address `json:"address"`
}

// Address is a structured mailing address with all fields optional
type Address struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country,omitempty"`
}

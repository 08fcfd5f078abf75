package domain

// Organization represents a shelter or rescue group that lists animals
type Organization struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Address  Address  `json:"address"`
	Distance *float64 `json:"distance,omitempty"`
	URL      string   `json:"url"`
}

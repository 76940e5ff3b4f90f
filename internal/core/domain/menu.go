package domain

// MenuItem is a dish on the restaurant menu. Image is a URL pointing at the
// external object store; this service never handles file contents.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

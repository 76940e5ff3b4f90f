package domain

// Slide is a promotional banner shown on the storefront carousel.
type Slide struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Subtext string `json:"subtext"`
	Image   string `json:"image,omitempty"`
}

package model

// Category groups tasks by name. Name is unique per user on the backend;
// tasks reference categories by name, and nothing cascades client-side.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"` // hex string, e.g. "#FF6B6B"
}

package domain

type BookStatus string

const (
	BookStatusAvailable  BookStatus = "AVAILABLE"
	BookStatusCheckedOut BookStatus = "CHECKED_OUT"
	BookStatusOnHold     BookStatus = "ON_HOLD"
)

type Book struct {
	ID            int32      `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	ISBN          string     `json:"isbn"`
	Genre         string     `json:"genre"`
	PublishedDate *string    `json:"published_date,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Status        BookStatus `json:"status"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

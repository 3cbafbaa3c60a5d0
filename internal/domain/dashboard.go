package domain

type DashboardStats struct {
	TotalBooks      int32 `json:"total_books"`
	CheckedOutBooks int32 `json:"checked_out_books"`
	ActiveUsers     int32 `json:"active_users"`
	OverdueBooks    int32 `json:"overdue_books"`
}

// ActivityEntry is one row of the recent-activity feed. A nil ReturnDate
// means the entry is a checkout still out; otherwise it is a return.
type ActivityEntry struct {
	CheckoutID   int32   `json:"id"`
	CheckoutDate string  `json:"checkout_date"`
	ReturnDate   *string `json:"return_date,omitempty"`
	BookTitle    string  `json:"book_title"`
	UserName     string  `json:"user_name"`
}

type PopularBook struct {
	ID            int32  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	CheckoutCount int32  `json:"checkout_count"`
}

package domain

// CheckoutCondition is the condition the borrower reports when returning a
// book. Values match what the return form submits.
type CheckoutCondition string

const (
	ConditionExcellent CheckoutCondition = "excellent"
	ConditionGood      CheckoutCondition = "good"
	ConditionFair      CheckoutCondition = "fair"
	ConditionPoor      CheckoutCondition = "poor"
	ConditionDamaged   CheckoutCondition = "damaged"
)

func (c CheckoutCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged:
		return true
	}
	return false
}

// Checkout records one lending of a book to a user. An open checkout is one
// with ReturnDate nil; at most one open checkout may exist per book.
type Checkout struct {
	ID           int32              `json:"id"`
	BookID       int32              `json:"book_id"`
	UserID       int32              `json:"user_id"`
	CheckoutDate string             `json:"checkout_date"`
	DueDate      string             `json:"due_date"`
	ReturnDate   *string            `json:"return_date,omitempty"`
	Condition    *CheckoutCondition `json:"condition,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

// CheckoutWithBorrower is a checkout joined with the borrowing user's name,
// used on book detail views.
type CheckoutWithBorrower struct {
	Checkout
	UserName string `json:"user_name"`
}

// CheckoutWithBook is a checkout joined with the book's title and author,
// used on member detail views.
type CheckoutWithBook struct {
	Checkout
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
}

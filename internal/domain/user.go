package domain

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

type User struct {
	ID          int32      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Status      UserStatus `json:"status"`
	MemberSince string     `json:"member_since"`
	UpdatedAt   string     `json:"updated_at"`
}

// UserWithOpenCount is a user joined with the number of books they currently
// have out, used on the member list view.
type UserWithOpenCount struct {
	User
	BooksBorrowed int32 `json:"books_borrowed"`
}

package domain

// User Model
type User struct {
	ID          uint         `gorm:"primaryKey" json:"id"`                  // Primary key
	Email       string       `gorm:"unique;not null" json:"email"`          // Unique email, stored lowercase
	Password    string       `gorm:"not null" json:"-"`                     // Bcrypt password hash, never serialized
	Role        string       `gorm:"default:user" json:"role"`              // Role: user or admin
	Memberships []Membership `json:"-"`                            // Memberships owned by this user, cascade-deleted with the user
}

package domain

// Membership Model: join table between User and Library.
// The composite unique index makes the database the arbiter of
// "at most one membership per (user, library)" under concurrent joins.
type Membership struct {
	ID        uint    `gorm:"primaryKey" json:"id"`                                     // Primary key
	UserID    uint    `gorm:"not null;uniqueIndex:idx_membership_pair" json:"user_id"`  // Foreign key to User
	LibraryID uint    `gorm:"not null;uniqueIndex:idx_membership_pair" json:"library_id"` // Foreign key to Library
	User      User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`                     // Deleting a user removes their memberships
	Library   Library `gorm:"constraint:OnDelete:CASCADE" json:"-"`                     // Deleting a library removes its memberships
	CreatedAt int64   `gorm:"autoCreateTime:milli" json:"created_at"`                   // Timestamp of creation in milliseconds
}

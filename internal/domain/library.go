package domain

// Library Model
type Library struct {
	ID         uint    `gorm:"primaryKey" json:"id"`   // Primary key
	Name       string  `gorm:"not null" json:"name"`   // Library name
	FloorCount int     `json:"floor_count"`            // Number of floors
	FloorArea  float64 `json:"floor_area"`             // Floor area, stored but carries no business rules
	CreatedAt  int64   `gorm:"autoCreateTime" json:"-"` // Timestamp of creation
}

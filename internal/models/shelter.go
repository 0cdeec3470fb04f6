package models

// Shelter represents an organization that lists pets and receives inquiry
// messages. Email is unique across shelters and users for login purposes.
type Shelter struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	PasswordHash string `json:"passwordHash,omitempty" gorm:"type:varchar(255);not null" validate:"required,min=6"`
	Address      string `json:"address" gorm:"type:varchar(255)" validate:"required,max=255"`
	Phone        string `json:"phone" gorm:"type:varchar(30)" validate:"required,max=30"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
}

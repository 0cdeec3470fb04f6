package models

// Pet represents an adoptable animal listed by a shelter.
type Pet struct {
	ID          int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string   `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Species     string   `json:"species" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	Breed       string   `json:"breed" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Age         int64    `json:"age" validate:"gte=0"`
	Gender      string   `json:"gender" gorm:"type:varchar(20);not null" validate:"required,max=20"`
	Size        string   `json:"size" gorm:"type:varchar(20);not null" validate:"required,max=20"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Photos      []string `json:"photos" gorm:"serializer:json;type:text"`
	ShelterID   int64    `json:"shelterId" gorm:"index;not null"`
	IsAvailable bool     `json:"isAvailable"`
}

// PetCreateRequest is the payload for listing a new pet. Required fields and
// the 1-50 age bound are enforced here, at the boundary; repositories do not
// re-validate.
type PetCreateRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Species     string   `json:"species" validate:"required,max=50"`
	Breed       string   `json:"breed" validate:"omitempty,max=100"`
	Age         int64    `json:"age" validate:"required,gte=1,lte=50"`
	Gender      string   `json:"gender" validate:"required,max=20"`
	Size        string   `json:"size" validate:"required,max=20"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Photos      []string `json:"photos"`
}

// PetUpdateRequest carries only the fields to change. A nil field means
// "leave unchanged"; the merge against current state happens in the service.
type PetUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Species     *string  `json:"species" validate:"omitempty,max=50"`
	Breed       *string  `json:"breed" validate:"omitempty,max=100"`
	Age         *int64   `json:"age" validate:"omitempty,gte=1,lte=50"`
	Gender      *string  `json:"gender" validate:"omitempty,max=20"`
	Size        *string  `json:"size" validate:"omitempty,max=20"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Photos      []string `json:"photos"`
	IsAvailable *bool    `json:"isAvailable"`
}

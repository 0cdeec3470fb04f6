package models

import "time"

// Message is an inquiry a user sends to a shelter about a pet. Sender contact
// details are denormalized: captured at send time, never live-joined against
// the User record afterwards.
type Message struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PetID       int64     `json:"petId" gorm:"index;not null"`
	ShelterID   int64     `json:"shelterId" gorm:"index;not null"`
	UserID      int64     `json:"userId" gorm:"index;not null"`
	UserName    string    `json:"userName" gorm:"type:varchar(200)"`
	UserEmail   string    `json:"userEmail" gorm:"type:varchar(255)"`
	UserPhone   string    `json:"userPhone" gorm:"type:varchar(30)"`
	MessageText string    `json:"messageText" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	IsRead      bool      `json:"isRead"`
}

// MessageRequest is the payload for sending an inquiry. CreatedAt and the
// read flag are set server-side on insert.
type MessageRequest struct {
	PetID       int64  `json:"petId" validate:"required,gt=0"`
	ShelterID   int64  `json:"shelterId" validate:"required,gt=0"`
	UserID      int64  `json:"userId" validate:"required,gt=0"`
	UserName    string `json:"userName" validate:"required,max=200"`
	UserEmail   string `json:"userEmail" validate:"required,email"`
	UserPhone   string `json:"userPhone" validate:"required,max=30"`
	MessageText string `json:"messageText" validate:"required,min=1,max=5000"`
}

// MarkAsReadRequest toggles the read flag on a message.
type MarkAsReadRequest struct {
	IsRead bool `json:"isRead"`
}

// SendMessageResponse acknowledges a created inquiry.
type SendMessageResponse struct {
	Success   bool  `json:"success"`
	MessageID int64 `json:"messageId"`
}

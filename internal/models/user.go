package models

import "time"

// User represents a student account.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	PRNNumber string    `json:"prnNumber" gorm:"column:prn_number;type:varchar(64);not null"`
	CreatedAt time.Time `json:"-"`
}

// RegisterInput is the data accepted when a student signs up.
type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=3,max=100"`
	Email           string `json:"email" validate:"required,email,emaildomain"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
	PRNNumber       string `json:"prnNumber" validate:"required,max=64"`
}

// LoginInput is the credential pair used for sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

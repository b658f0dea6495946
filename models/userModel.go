package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email      string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	FirstName  string    `json:"firstName" gorm:"size:255"`
	LastName   string    `json:"lastName" gorm:"size:255"`
	Password   string    `json:"-" gorm:"size:255;not null"`
	IsStaff    bool      `json:"isStaff"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	DateJoined time.Time `json:"dateJoined"`
	Profile    *Profile  `json:"profile,omitempty"`
}

// Profile holds the optional personal details of a user. Every user has exactly one.
type Profile struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"userId" gorm:"uniqueIndex;not null"`
	PhoneNumber  string    `json:"phoneNumber" gorm:"size:30"`
	AboutMe      string    `json:"aboutMe" gorm:"type:text"`
	Gender       string    `json:"gender" gorm:"size:20"`
	Country      string    `json:"country" gorm:"size:2"`
	City         string    `json:"city" gorm:"size:255"`
	ProfilePhoto string    `json:"profilePhoto"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role is the value carried in the "role" token claim.
func (u User) Role() string {
	if u.IsStaff {
		return "admin"
	}
	return "user"
}

type RegisterData struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdate struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,e164"`
	AboutMe     *string `json:"aboutMe"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Country     *string `json:"country" binding:"omitempty,iso3166_1_alpha2"`
	City        *string `json:"city" binding:"omitempty,max=255"`
}

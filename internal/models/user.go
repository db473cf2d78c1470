package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionStarter  = "starter"
	SubscriptionPro      = "pro"
	SubscriptionBusiness = "business"
)

// ValidSubscription reports whether s is one of the accepted tiers.
func ValidSubscription(s string) bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Subscription      string `gorm:"default:starter" json:"subscription"`
	AvatarURL         string `json:"avatarURL"`
	Token             string `gorm:"default:''" json:"-"`
	Verify            bool   `gorm:"default:false" json:"verify"`
	VerificationToken string `gorm:"not null" json:"-"`
}

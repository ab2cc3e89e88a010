package models

import "time"

// UserType gates entertainer-only features such as upgrades and multiple
// listing images.
type UserType string

const (
	UserTypeEntertainer    UserType = "entertainer"
	UserTypeNonEntertainer UserType = "non_entertainer"
)

type Profile struct {
	ID          string    `json:"id"`
	UserType    UserType  `json:"user_type"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Identity is the authenticated caller as seen by the services.
type Identity struct {
	UserID   string
	UserType UserType
}

func (i Identity) IsEntertainer() bool {
	return i.UserType == UserTypeEntertainer
}

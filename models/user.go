package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleName defines allowed roles in the system
type RoleName string

const (
	RoleAdmin   RoleName = "ADMIN"
	RoleManager RoleName = "MANAGER"
	RoleMember  RoleName = "MEMBER"
)

// AllRoles is the closed set of roles seeded at startup
var AllRoles = []RoleName{RoleAdmin, RoleManager, RoleMember}

// CountryName is the partition key for multi-region scoping
type CountryName string

const (
	CountryIndia   CountryName = "India"
	CountryAmerica CountryName = "America"
)

// AllCountries is the closed set of countries seeded at startup
var AllCountries = []CountryName{CountryIndia, CountryAmerica}

// Role is a lookup row backing the RoleName enum for referential integrity
type Role struct {
	ID   uint     `json:"id" gorm:"primaryKey"`
	Name RoleName `json:"name" gorm:"uniqueIndex;size:50;not null"`
}

// Country is a lookup row backing the CountryName enum
type Country struct {
	ID   uint        `json:"id" gorm:"primaryKey"`
	Name CountryName `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	RoleID       uint      `json:"-" gorm:"not null"`
	Role         Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CountryID    uint      `json:"-" gorm:"not null"`
	Country      Country   `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user's resolved role bypasses country scoping.
func (u *User) IsAdmin() bool {
	return u.Role.Name == RoleAdmin
}

package model

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a registered guest or host
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	IsHost    bool      `json:"isHost" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// bcrypt only reads the first 72 bytes of a password
const maxPasswordBytes = 72

// hashInput drops anything past the bytes bcrypt reads, so long passwords
// hash and compare instead of being rejected.
func hashInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// BeforeCreate trims the name and replaces the plaintext password with its bcrypt hash.
// It runs once per insert, so the stored password is never the submitted plaintext.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)

	hashed, err := bcrypt.GenerateFromPassword(hashInput(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), hashInput(password)) == nil
}

// UserView is the sanitized user returned by the auth endpoints
type UserView struct {
	ID     uint   `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	IsHost bool   `json:"isHost"`
}

// View returns the public projection of u
func (u *User) View() UserView {
	return UserView{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		IsHost: u.IsHost,
	}
}

package models

import (
	"time"

	"campushub/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Username      string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	FullName      string         `gorm:"size:100;not null" json:"full_name"`
	Email         string         `gorm:"size:255" json:"email"`
	ContactNumber string         `gorm:"size:20" json:"contact_number"`
	StudentNumber string         `gorm:"size:30" json:"student_number"`
	PasswordHash  string         `gorm:"size:255;not null" json:"-"`
	Role          string         `gorm:"size:20;not null;default:'Student';index" json:"role"`     // Student | Admin
	Status        string         `gorm:"size:20;not null;default:'Active';index" json:"status"`    // Active | Banned
	ProgramID     *uint          `gorm:"index" json:"program_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool   { return u.Role == domain.RoleAdmin }
func (u *User) IsStudent() bool { return u.Role == domain.RoleStudent }
func (u *User) IsBanned() bool  { return u.Status == domain.UserStatusBanned }

// DisplayName prefers the full name over the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type College struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:150;not null;uniqueIndex" json:"name"`
}

func (College) TableName() string {
	return "colleges"
}

type Program struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:150;not null" json:"name"`
	CollegeID uint   `gorm:"not null;index" json:"college_id"`

	College *College `gorm:"foreignKey:CollegeID" json:"college,omitempty"`
}

func (Program) TableName() string {
	return "programs"
}

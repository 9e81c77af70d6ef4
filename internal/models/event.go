package models

import (
	"time"

	"campushub/internal/domain"
)

type Event struct {
	ID                   uint                  `gorm:"primaryKey" json:"id"`
	Title                string                `gorm:"size:200;not null" json:"title"`
	Description          string                `gorm:"size:2000;not null" json:"description"`
	CollegeID            uint                  `gorm:"not null;index" json:"college_id"`
	ProgramID            *uint                 `gorm:"index" json:"program_id"`
	CampusLocation       domain.CampusLocation `gorm:"not null;default:1" json:"campus_location"`
	Venue                string                `gorm:"size:200;not null" json:"venue"`
	StartDate            time.Time             `gorm:"not null;index" json:"start_date"`
	EndDate              time.Time             `gorm:"not null" json:"end_date"`
	RegistrationDeadline *time.Time            `json:"registration_deadline"`
	ImageURL             string                `gorm:"size:500" json:"image_url"`
	Priority             string                `gorm:"size:10;not null;default:'Medium'" json:"priority"`
	Type                 string                `gorm:"size:50;not null" json:"type"`
	InterestedCount      int                   `gorm:"not null;default:0" json:"interested_count"`
	BookmarksCount       int                   `gorm:"not null;default:0" json:"bookmarks_count"`
	OrganizerID          *uint                 `gorm:"index" json:"organizer_id"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`

	College   *College `gorm:"foreignKey:CollegeID" json:"college,omitempty"`
	Program   *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Organizer *User    `gorm:"foreignKey:OrganizerID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

type EventBookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_bookmark_event_user" json:"event_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_bookmark_event_user;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Event *Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventBookmark) TableName() string {
	return "event_bookmarks"
}

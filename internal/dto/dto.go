// Package dto holds the request and response shapes exchanged between handlers and services.
package dto

import (
	"time"

	"campushub/internal/domain"
)

// Input shapes carry their rules in validate tags; label names the field in error messages.

type CreateMarketplaceItem struct {
	Title         string                `json:"title" validate:"notblank,max=100" label:"Title"`
	Description   string                `json:"description" validate:"notblank,max=500" label:"Description"`
	Price         float64               `json:"price" validate:"gt=0,lte=999999" label:"Price"`
	ImageURL      string                `json:"image_url" validate:"omitempty,weburl"`
	ContactNumber string                `json:"contact_number" validate:"omitempty,phone"`
	Category      domain.ItemCategory   `json:"category" validate:"enum" label:"category"`
	Condition     domain.ItemCondition  `json:"condition" validate:"enum" label:"condition"`
	Location      domain.CampusLocation `json:"location" validate:"enum" label:"campus location"`
	SellerID      uint                  `json:"-" validate:"required" label:"seller ID"`
	SellerName    string                `json:"-"`
}

type UpdateMarketplaceItem struct {
	ID            uint                  `json:"-" validate:"required" label:"item ID"`
	Title         string                `json:"title" validate:"notblank,max=100" label:"Title"`
	Description   string                `json:"description" validate:"notblank,max=500" label:"Description"`
	Price         float64               `json:"price" validate:"gt=0,lte=999999" label:"Price"`
	ImageURL      string                `json:"image_url" validate:"omitempty,weburl"`
	ContactNumber string                `json:"contact_number" validate:"omitempty,phone"`
	Category      domain.ItemCategory   `json:"category" validate:"enum" label:"category"`
	Condition     domain.ItemCondition  `json:"condition" validate:"enum" label:"condition"`
	Location      domain.CampusLocation `json:"location" validate:"enum" label:"campus location"`
	UserID        uint                  `json:"-"`
}

// ItemStatusOperation is a seller acting on their own listing (mark sold/available, unlike, delete).
type ItemStatusOperation struct {
	ItemID uint `validate:"required" label:"item ID"`
	UserID uint `validate:"required" label:"user ID"`
}

type ToggleLike struct {
	ItemID uint `validate:"required" label:"item ID"`
	UserID uint `validate:"required" label:"user ID"`
}

type CreateReport struct {
	MarketplaceItemID uint    `json:"-" validate:"required" label:"marketplace item ID"`
	ReporterID        uint    `json:"-" validate:"required" label:"reporter ID"`
	Reason            string  `json:"reason" validate:"notblank,max=500" label:"Reason"`
	Description       *string `json:"description" validate:"omitempty,max=1000" label:"Description"`
}

type CreateUser struct {
	Username      string `json:"username" validate:"notblank,max=50" label:"Username"`
	FullName      string `json:"full_name" validate:"notblank,max=100" label:"Full name"`
	Password      string `json:"password" validate:"notblank,min=6,max=100" label:"Password"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number" validate:"omitempty,phone"`
	StudentNumber string `json:"student_number" validate:"omitempty,max=30" label:"Student number"`
	ProgramID     *uint  `json:"program_id"`
}

type Login struct {
	Username string `json:"username" validate:"notblank" label:"Username"`
	Password string `json:"password" validate:"notblank" label:"Password"`
}

// UpdateProfile is a student editing their own account details.
type UpdateProfile struct {
	UserID        uint   `json:"-" validate:"required" label:"user ID"`
	FullName      string `json:"full_name" validate:"notblank,max=100" label:"Full name"`
	StudentNumber string `json:"student_number" validate:"omitempty,max=30" label:"Student number"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number" validate:"omitempty,phone"`
}

type ItemStatusUpdate struct {
	ItemID uint              `json:"item_id" validate:"required" label:"item ID"`
	Status domain.ItemStatus `json:"status" validate:"itemstatus"`
}

type ReportResolution struct {
	ReportID    uint                `json:"report_id" validate:"required" label:"report ID"`
	AdminUserID uint                `json:"admin_user_id" validate:"required" label:"admin user ID"`
	Status      domain.ReportStatus `json:"status" validate:"reportstatus"`
	AdminNotes  *string             `json:"admin_notes" validate:"omitempty,max=500" label:"Admin notes"`
}

type FlagItem struct {
	ItemID      uint `json:"item_id" validate:"required" label:"item ID"`
	AdminUserID uint `json:"admin_user_id" validate:"required" label:"admin user ID"`
}

// EventInput is the admin form for creating or editing an event. A zero campus location means
// Main Campus, an empty priority means Medium and a zero end date means one hour after the start.
type EventInput struct {
	ID                   uint                  `json:"-"`
	Title                string                `json:"title" validate:"notblank,max=200" label:"Event title"`
	Description          string                `json:"description" validate:"notblank,max=2000" label:"Event description"`
	CollegeID            uint                  `json:"college_id" validate:"required" label:"college"`
	ProgramID            *uint                 `json:"program_id"`
	CampusLocation       domain.CampusLocation `json:"campus_location" validate:"enum" label:"campus location"`
	Venue                string                `json:"venue" validate:"notblank,max=200" label:"Event location"`
	StartDate            time.Time             `json:"start_date" validate:"required" label:"Event date"`
	EndDate              time.Time             `json:"end_date" validate:"omitempty,gtefield=StartDate" label:"Event end date"`
	RegistrationDeadline *time.Time            `json:"registration_deadline"`
	ImageURL             string                `json:"image_url" validate:"omitempty,weburl"`
	Priority             string                `json:"priority" validate:"priority"`
	Type                 string                `json:"type" validate:"notblank,max=50" label:"Event type"`
	OrganizerID          uint                  `json:"-"`
}

type MarketplaceItem struct {
	ID            uint                  `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Price         float64               `json:"price"`
	Category      domain.ItemCategory   `json:"category"`
	CategoryName  string                `json:"category_name"`
	Condition     domain.ItemCondition  `json:"condition"`
	ConditionName string                `json:"condition_name"`
	Location      domain.CampusLocation `json:"location"`
	LocationName  string                `json:"location_name"`
	ImageURL      string                `json:"image_url"`
	SellerID      uint                  `json:"seller_id"`
	SellerName    string                `json:"seller_name"`
	ContactNumber string                `json:"contact_number"`
	LikesCount    int                   `json:"likes_count"`
	IsLiked       bool                  `json:"is_liked"`
	Status        domain.ItemStatus     `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at"`
	TimeAgo       string                `json:"time_ago"`
}

type Report struct {
	ID                uint                `json:"id"`
	MarketplaceItemID uint                `json:"marketplace_item_id"`
	ItemTitle         string              `json:"item_title"`
	ReporterID        uint                `json:"reporter_id"`
	ReporterName      string              `json:"reporter_name"`
	Reason            string              `json:"reason"`
	Description       *string             `json:"description"`
	Status            domain.ReportStatus `json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
	ResolvedAt        *time.Time          `json:"resolved_at"`
	AdminUserID       *uint               `json:"admin_user_id"`
	AdminNotes        *string             `json:"admin_notes"`
}

type User struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	StudentNumber string    `json:"student_number"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminUser is a student row in the admin back office.
type AdminUser struct {
	User
	ReportsCount  int64  `json:"reports_count"`
	ListingsCount int64  `json:"listings_count"`
	JoinDate      string `json:"join_date"`
}

// ProfileStats summarizes a student's own listings.
type ProfileStats struct {
	TotalListings  int     `json:"total_listings"`
	ActiveListings int     `json:"active_listings"`
	ItemsSold      int     `json:"items_sold"`
	TotalEarnings  float64 `json:"total_earnings"`
}

type LoginResult struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

type ToggleLikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

type MarketplaceStats struct {
	TotalListings   int64 `json:"total_listings"`
	ActiveListings  int64 `json:"active_listings"`
	SoldListings    int64 `json:"sold_listings"`
	FlaggedListings int64 `json:"flagged_listings"`
}

type ReportStats struct {
	TotalReports    int64 `json:"total_reports"`
	PendingReports  int64 `json:"pending_reports"`
	ResolvedReports int64 `json:"resolved_reports"`
}

type UserStats struct {
	TotalUsers  int64 `json:"total_users"`
	ActiveUsers int64 `json:"active_users"`
	BannedUsers int64 `json:"banned_users"`
}

type CategoryDistribution struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type CollegeDistribution struct {
	College    string  `json:"college"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DashboardStats struct {
	TotalStudents        int64                  `json:"total_students"`
	PublishedEvents      int64                  `json:"published_events"`
	ActiveListings       int64                  `json:"active_listings"`
	PendingReports       int64                  `json:"pending_reports"`
	CategoryDistribution []CategoryDistribution `json:"category_distribution"`
	CollegeDistribution  []CollegeDistribution  `json:"college_distribution"`
}

type Event struct {
	ID                   uint                  `json:"id"`
	Title                string                `json:"title"`
	Description          string                `json:"description"`
	CollegeID            uint                  `json:"college_id"`
	CollegeName          string                `json:"college_name"`
	ProgramID            *uint                 `json:"program_id"`
	ProgramName          string                `json:"program_name,omitempty"`
	CampusLocation       domain.CampusLocation `json:"campus_location"`
	CampusLocationName   string                `json:"campus_location_name"`
	Venue                string                `json:"venue"`
	StartDate            time.Time             `json:"start_date"`
	EndDate              time.Time             `json:"end_date"`
	RegistrationDeadline *time.Time            `json:"registration_deadline"`
	Status               domain.EventStatus    `json:"status"`
	ImageURL             string                `json:"image_url"`
	Priority             string                `json:"priority"`
	Type                 string                `json:"type"`
	InterestedCount      int                   `json:"interested_count"`
	BookmarksCount       int                   `json:"bookmarks_count"`
	IsBookmarked         bool                  `json:"is_bookmarked"`
	OrganizerName        string                `json:"organizer_name,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
}

type ToggleBookmarkResult struct {
	Bookmarked     bool `json:"bookmarked"`
	BookmarksCount int  `json:"bookmarks_count"`
}

type College struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Program struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CollegeID uint   `json:"college_id"`
}

// ModerationEvent is pushed to connected admins on every successful moderation action.
type ModerationEvent struct {
	Type    string    `json:"type"`
	ID      uint      `json:"id"`
	Status  string    `json:"status,omitempty"`
	ActorID uint      `json:"actor_id,omitempty"`
	At      time.Time `json:"at"`
}

package repository_test

import (
	"testing"
	"time"

	"campushub/internal/domain"
	"campushub/internal/models"

	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username, role string, programID *uint) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		FullName:     username + " full",
		PasswordHash: "x",
		Role:         role,
		Status:       domain.UserStatusActive,
		ProgramID:    programID,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedItem(t *testing.T, db *gorm.DB, sellerID uint, category domain.ItemCategory, status domain.ItemStatus, createdAt time.Time) *models.MarketplaceItem {
	t.Helper()
	item := &models.MarketplaceItem{
		Title:       "Item",
		Description: "Something for sale",
		Price:       100,
		Category:    category,
		Condition:   domain.ConditionLikeNew,
		Location:    domain.LocationMainCampus,
		SellerID:    sellerID,
		SellerName:  "seller",
		Status:      status,
		CreatedAt:   createdAt,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func seedReport(t *testing.T, db *gorm.DB, itemID, reporterID uint, status domain.ReportStatus) *models.Report {
	t.Helper()
	r := &models.Report{
		MarketplaceItemID: itemID,
		ReporterUserID:    reporterID,
		Reason:            "Looks like a scam",
		Status:            status,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return r
}

func seedCollege(t *testing.T, db *gorm.DB, name string) *models.College {
	t.Helper()
	c := &models.College{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed college: %v", err)
	}
	return c
}

func seedEvent(t *testing.T, db *gorm.DB, collegeID uint, start time.Time) *models.Event {
	t.Helper()
	e := &models.Event{
		Title:          "Foundation Day",
		Description:    "Annual celebration",
		CollegeID:      collegeID,
		CampusLocation: domain.LocationMainCampus,
		Venue:          "Gymnasium",
		StartDate:      start,
		EndDate:        start.Add(2 * time.Hour),
		Priority:       domain.PriorityMedium,
		Type:           "Celebration",
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return e
}

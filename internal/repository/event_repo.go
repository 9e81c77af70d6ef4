package repository

import (
	"context"
	"errors"

	"campushub/internal/models"

	"gorm.io/gorm"
)

var eventColumns = []string{
	"title", "description", "college_id", "program_id", "campus_location", "venue",
	"start_date", "end_date", "registration_deadline", "image_url", "priority", "type", "updated_at",
}

// EventFilter narrows List. Zero values mean no filter.
type EventFilter struct {
	CollegeName string
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	return r.db.WithContext(ctx).Omit("College", "Program", "Organizer").Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var e models.Event
	err := r.db.WithContext(ctx).Preload("College").Preload("Program").Preload("Organizer").First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update writes the admin-editable columns of e.
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	return r.db.WithContext(ctx).Model(e).Select(eventColumns).Updates(e).Error
}

// Delete removes the event and its bookmarks.
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventBookmark{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List returns events soonest first.
func (r *EventRepository) List(ctx context.Context, f EventFilter) ([]models.Event, error) {
	q := r.db.WithContext(ctx).Model(&models.Event{}).
		Preload("College").Preload("Program").Preload("Organizer")
	if f.CollegeName != "" {
		q = q.Joins("JOIN colleges ON colleges.id = events.college_id").
			Where("colleges.name = ?", f.CollegeName)
	}
	var list []models.Event
	err := q.Order("events.start_date ASC").Order("events.id ASC").Find(&list).Error
	return list, err
}

// ToggleBookmark adds the (event, user) bookmark when absent and removes it otherwise,
// keeping bookmarks_count in step.
func (r *EventRepository) ToggleBookmark(ctx context.Context, eventID, userID uint) (bookmarked bool, count int, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e models.Event
		if err := tx.Select("id", "bookmarks_count").First(&e, eventID).Error; err != nil {
			return err
		}

		var b models.EventBookmark
		findErr := tx.Where("event_id = ? AND user_id = ?", eventID, userID).First(&b).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.EventBookmark{EventID: eventID, UserID: userID}).Error; err != nil {
				return err
			}
			bookmarked = true
			count = e.BookmarksCount + 1
		case findErr != nil:
			return findErr
		default:
			if err := tx.Delete(&b).Error; err != nil {
				return err
			}
			count = max(e.BookmarksCount-1, 0)
		}
		return tx.Model(&models.Event{}).Where("id = ?", eventID).UpdateColumn("bookmarks_count", count).Error
	})
	return bookmarked, count, err
}

// BookmarkedIDs returns the subset of eventIDs the user has bookmarked.
func (r *EventRepository) BookmarkedIDs(ctx context.Context, userID uint, eventIDs []uint) (map[uint]bool, error) {
	marked := make(map[uint]bool)
	if len(eventIDs) == 0 {
		return marked, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.EventBookmark{}).
		Where("user_id = ? AND event_id IN ?", userID, eventIDs).
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		marked[id] = true
	}
	return marked, nil
}

// Bookmarked returns the events a user has bookmarked, soonest first.
func (r *EventRepository) Bookmarked(ctx context.Context, userID uint) ([]models.Event, error) {
	var list []models.Event
	err := r.db.WithContext(ctx).
		Preload("College").Preload("Program").Preload("Organizer").
		Joins("JOIN event_bookmarks ON event_bookmarks.event_id = events.id").
		Where("event_bookmarks.user_id = ?", userID).
		Order("events.start_date ASC").
		Find(&list).Error
	return list, err
}

// IncrementInterest bumps interested_count by one.
func (r *EventRepository) IncrementInterest(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).
		UpdateColumn("interested_count", gorm.Expr("interested_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EventRepository) Colleges(ctx context.Context) ([]models.College, error) {
	var list []models.College
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

func (r *EventRepository) GetCollege(ctx context.Context, id uint) (*models.College, error) {
	var c models.College
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Programs lists programs by name, restricted to one college when collegeID is non-zero.
func (r *EventRepository) Programs(ctx context.Context, collegeID uint) ([]models.Program, error) {
	q := r.db.WithContext(ctx).Model(&models.Program{})
	if collegeID != 0 {
		q = q.Where("college_id = ?", collegeID)
	}
	var list []models.Program
	err := q.Order("name ASC").Find(&list).Error
	return list, err
}

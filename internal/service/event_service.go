package service

import (
	"context"
	"errors"
	"time"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/repository"
	"campushub/internal/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f repository.EventFilter) ([]models.Event, error)
	ToggleBookmark(ctx context.Context, eventID, userID uint) (bool, int, error)
	BookmarkedIDs(ctx context.Context, userID uint, eventIDs []uint) (map[uint]bool, error)
	Bookmarked(ctx context.Context, userID uint) ([]models.Event, error)
	IncrementInterest(ctx context.Context, id uint) error
	Colleges(ctx context.Context) ([]models.College, error)
	GetCollege(ctx context.Context, id uint) (*models.College, error)
	Programs(ctx context.Context, collegeID uint) ([]models.Program, error)
}

// EventService serves the campus event calendar to students and its editor to admins.
type EventService struct {
	events EventStore
	images ImageRemover
	log    *zap.Logger
}

// NewEventService wires the event calendar. images may be nil.
func NewEventService(events EventStore, images ImageRemover, log *zap.Logger) *EventService {
	return &EventService{events: events, images: images, log: log.Named("events")}
}

// List returns events soonest first, optionally restricted to one college by name.
func (s *EventService) List(ctx context.Context, userID uint, collegeName string) ([]dto.Event, error) {
	list, err := s.events.List(ctx, repository.EventFilter{CollegeName: collegeName})
	if err != nil {
		return nil, storageFailure(s.log, "List", "loading events", err)
	}
	return s.withBookmarks(ctx, "List", userID, list)
}

func (s *EventService) Get(ctx context.Context, eventID, userID uint) (*dto.Event, error) {
	if errs := validation.EventID(eventID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	e, err := s.load(ctx, "Get", eventID)
	if err != nil {
		return nil, err
	}
	out, err := s.withBookmarks(ctx, "Get", userID, []models.Event{*e})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *EventService) ToggleBookmark(ctx context.Context, eventID, userID uint) (*dto.ToggleBookmarkResult, error) {
	if errs := append(validation.EventID(eventID), validation.UserID(userID)...); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	marked, count, err := s.events.ToggleBookmark(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("event", eventID)
		}
		return nil, storageFailure(s.log, "ToggleBookmark", "updating the bookmark", err, zap.Uint("event_id", eventID), zap.Uint("user_id", userID))
	}
	return &dto.ToggleBookmarkResult{Bookmarked: marked, BookmarksCount: count}, nil
}

func (s *EventService) Bookmarked(ctx context.Context, userID uint) ([]dto.Event, error) {
	if errs := validation.UserID(userID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	list, err := s.events.Bookmarked(ctx, userID)
	if err != nil {
		return nil, storageFailure(s.log, "Bookmarked", "loading bookmarked events", err, zap.Uint("user_id", userID))
	}
	now := nowUTC()
	out := make([]dto.Event, 0, len(list))
	for i := range list {
		out = append(out, toEventDTO(&list[i], true, now))
	}
	return out, nil
}

// RegisterInterest counts the caller as interested. Ended events and events past their
// registration deadline are refused.
func (s *EventService) RegisterInterest(ctx context.Context, eventID, userID uint) (*dto.Event, error) {
	if errs := append(validation.EventID(eventID), validation.UserID(userID)...); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	e, err := s.load(ctx, "RegisterInterest", eventID)
	if err != nil {
		return nil, err
	}
	now := nowUTC()
	if domain.EventStatusAt(e.StartDate, e.EndDate, now) == domain.EventEnded {
		return nil, domain.NewConflictError("this event has already ended")
	}
	if e.RegistrationDeadline != nil && now.After(*e.RegistrationDeadline) {
		return nil, domain.NewConflictError("registration for this event is closed")
	}
	if err := s.events.IncrementInterest(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("event", eventID)
		}
		return nil, storageFailure(s.log, "RegisterInterest", "registering for the event", err, zap.Uint("event_id", eventID))
	}
	e.InterestedCount++
	out, err := s.withBookmarks(ctx, "RegisterInterest", userID, []models.Event{*e})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *EventService) Create(ctx context.Context, in dto.EventInput) (*dto.Event, error) {
	in = withEventDefaults(in)
	if errs := validation.Event(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	if err := s.checkCollege(ctx, "Create", in.CollegeID); err != nil {
		return nil, err
	}
	e := &models.Event{CreatedAt: nowUTC()}
	applyEventInput(e, in)
	if in.OrganizerID != 0 {
		id := in.OrganizerID
		e.OrganizerID = &id
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, storageFailure(s.log, "Create", "creating the event", err)
	}
	s.log.Info("event created", zap.Uint("event_id", e.ID), zap.Uint("organizer_id", in.OrganizerID))
	return s.reload(ctx, "Create", e.ID)
}

func (s *EventService) Update(ctx context.Context, in dto.EventInput) (*dto.Event, error) {
	if errs := validation.EventID(in.ID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	in = withEventDefaults(in)
	if errs := validation.Event(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	e, err := s.load(ctx, "Update", in.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollege(ctx, "Update", in.CollegeID); err != nil {
		return nil, err
	}
	oldImage := e.ImageURL
	applyEventInput(e, in)
	e.UpdatedAt = nowUTC()
	if err := s.events.Update(ctx, e); err != nil {
		return nil, storageFailure(s.log, "Update", "updating the event", err, zap.Uint("event_id", in.ID))
	}
	if oldImage != "" && oldImage != e.ImageURL {
		s.removeImage(ctx, e.ID, oldImage)
	}
	return s.reload(ctx, "Update", e.ID)
}

func (s *EventService) Delete(ctx context.Context, eventID uint) error {
	if errs := validation.EventID(eventID); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	e, err := s.load(ctx, "Delete", eventID)
	if err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("event", eventID)
		}
		return storageFailure(s.log, "Delete", "deleting the event", err, zap.Uint("event_id", eventID))
	}
	if e.ImageURL != "" {
		s.removeImage(ctx, eventID, e.ImageURL)
	}
	return nil
}

func (s *EventService) Colleges(ctx context.Context) ([]dto.College, error) {
	list, err := s.events.Colleges(ctx)
	if err != nil {
		return nil, storageFailure(s.log, "Colleges", "loading colleges", err)
	}
	out := make([]dto.College, 0, len(list))
	for _, c := range list {
		out = append(out, dto.College{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Programs lists every program, or only those of collegeID when it is non-zero.
func (s *EventService) Programs(ctx context.Context, collegeID uint) ([]dto.Program, error) {
	list, err := s.events.Programs(ctx, collegeID)
	if err != nil {
		return nil, storageFailure(s.log, "Programs", "loading programs", err, zap.Uint("college_id", collegeID))
	}
	out := make([]dto.Program, 0, len(list))
	for _, p := range list {
		out = append(out, dto.Program{ID: p.ID, Name: p.Name, CollegeID: p.CollegeID})
	}
	return out, nil
}

func (s *EventService) ProgramsByCollege(ctx context.Context, collegeID uint) ([]dto.Program, error) {
	if errs := validation.CollegeID(collegeID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	if err := s.checkCollege(ctx, "ProgramsByCollege", collegeID); err != nil {
		return nil, err
	}
	return s.Programs(ctx, collegeID)
}

func (s *EventService) checkCollege(ctx context.Context, op string, collegeID uint) error {
	if _, err := s.events.GetCollege(ctx, collegeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewValidationError([]string{"Valid college is required"})
		}
		return storageFailure(s.log, op, "loading the college", err, zap.Uint("college_id", collegeID))
	}
	return nil
}

func (s *EventService) load(ctx context.Context, op string, eventID uint) (*models.Event, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("event", eventID)
		}
		return nil, storageFailure(s.log, op, "loading the event", err, zap.Uint("event_id", eventID))
	}
	return e, nil
}

func (s *EventService) reload(ctx context.Context, op string, eventID uint) (*dto.Event, error) {
	e, err := s.load(ctx, op, eventID)
	if err != nil {
		return nil, err
	}
	out := toEventDTO(e, false, nowUTC())
	return &out, nil
}

func (s *EventService) removeImage(ctx context.Context, eventID uint, url string) {
	if s.images == nil {
		return
	}
	if err := s.images.DeleteByURL(ctx, url); err != nil {
		s.log.Warn("event image not removed", zap.Uint("event_id", eventID), zap.Error(err))
	}
}

func (s *EventService) withBookmarks(ctx context.Context, op string, userID uint, list []models.Event) ([]dto.Event, error) {
	marked := map[uint]bool{}
	if userID != 0 && len(list) > 0 {
		ids := make([]uint, len(list))
		for i := range list {
			ids[i] = list[i].ID
		}
		var err error
		if marked, err = s.events.BookmarkedIDs(ctx, userID, ids); err != nil {
			return nil, storageFailure(s.log, op, "loading bookmarks", err, zap.Uint("user_id", userID))
		}
	}
	now := nowUTC()
	out := make([]dto.Event, 0, len(list))
	for i := range list {
		out = append(out, toEventDTO(&list[i], marked[list[i].ID], now))
	}
	return out, nil
}

func withEventDefaults(in dto.EventInput) dto.EventInput {
	if in.CampusLocation == 0 {
		in.CampusLocation = domain.LocationMainCampus
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}
	if in.EndDate.IsZero() && !in.StartDate.IsZero() {
		in.EndDate = in.StartDate.Add(time.Hour)
	}
	return in
}

func applyEventInput(e *models.Event, in dto.EventInput) {
	e.Title = in.Title
	e.Description = in.Description
	e.CollegeID = in.CollegeID
	e.ProgramID = in.ProgramID
	e.CampusLocation = in.CampusLocation
	e.Venue = in.Venue
	e.StartDate = in.StartDate.UTC()
	e.EndDate = in.EndDate.UTC()
	e.RegistrationDeadline = in.RegistrationDeadline
	e.ImageURL = in.ImageURL
	e.Priority = in.Priority
	e.Type = in.Type
}

func toEventDTO(e *models.Event, bookmarked bool, now time.Time) dto.Event {
	out := dto.Event{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		CollegeID:            e.CollegeID,
		ProgramID:            e.ProgramID,
		CampusLocation:       e.CampusLocation,
		CampusLocationName:   domain.CampusLocationName(e.CampusLocation),
		Venue:                e.Venue,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		RegistrationDeadline: e.RegistrationDeadline,
		Status:               domain.EventStatusAt(e.StartDate, e.EndDate, now),
		ImageURL:             e.ImageURL,
		Priority:             e.Priority,
		Type:                 e.Type,
		InterestedCount:      e.InterestedCount,
		BookmarksCount:       e.BookmarksCount,
		IsBookmarked:         bookmarked,
		CreatedAt:            e.CreatedAt,
	}
	if e.College != nil {
		out.CollegeName = e.College.Name
	}
	if e.Program != nil {
		out.ProgramName = e.Program.Name
	}
	if e.Organizer != nil {
		out.OrganizerName = e.Organizer.DisplayName()
	}
	return out
}

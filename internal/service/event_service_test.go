package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/service"

	"go.uber.org/zap"
)

func upcomingEvent(id uint) *models.Event {
	start := time.Now().UTC().Add(72 * time.Hour)
	return &models.Event{
		ID:             id,
		Title:          "Engineering Week",
		Description:    "Week-long celebration",
		CollegeID:      1,
		CampusLocation: domain.LocationMainCampus,
		Venue:          "Quadrangle",
		StartDate:      start,
		EndDate:        start.Add(3 * time.Hour),
		Priority:       domain.PriorityHigh,
		Type:           "Academic",
		ImageURL:       "https://res.cloudinary.com/demo/image/upload/events/eweek.jpg",
	}
}

func eventForm() dto.EventInput {
	return dto.EventInput{
		Title:       "Career Fair",
		Description: "Meet employers from the region",
		CollegeID:   1,
		Venue:       "Gymnasium",
		StartDate:   time.Now().UTC().Add(48 * time.Hour),
		Type:        "Career",
		OrganizerID: 7,
	}
}

func TestEventListAndBookmarks(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventStore(upcomingEvent(1))
	svc := service.NewEventService(events, nil, zap.NewNop())

	res, err := svc.ToggleBookmark(ctx, 1, 20)
	if err != nil || !res.Bookmarked || res.BookmarksCount != 1 {
		t.Fatalf("ToggleBookmark = %+v, %v", res, err)
	}

	list, err := svc.List(ctx, 20, "College of Engineering")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || !list[0].IsBookmarked || list[0].Status != domain.EventUpcoming {
		t.Errorf("list = %+v", list)
	}
	if events.lastFilter.CollegeName != "College of Engineering" {
		t.Errorf("filter = %+v", events.lastFilter)
	}

	other, _ := svc.List(ctx, 21, "")
	if len(other) != 1 || other[0].IsBookmarked {
		t.Errorf("another student sees bookmark: %+v", other)
	}

	marked, _ := svc.Bookmarked(ctx, 20)
	if len(marked) != 1 || !marked[0].IsBookmarked {
		t.Errorf("bookmarked = %+v", marked)
	}

	res, _ = svc.ToggleBookmark(ctx, 1, 20)
	if res.Bookmarked || res.BookmarksCount != 0 {
		t.Errorf("second toggle = %+v", res)
	}

	if _, err := svc.ToggleBookmark(ctx, 99, 20); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing event err = %v", err)
	}
	if _, err := svc.ToggleBookmark(ctx, 0, 0); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero ids err = %v", err)
	}

	events.listErr = errors.New("db down")
	if _, err := svc.List(ctx, 20, ""); !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("list failure err = %v", err)
	}
}

func TestEventGet(t *testing.T) {
	ctx := context.Background()
	svc := service.NewEventService(newFakeEventStore(upcomingEvent(1)), nil, zap.NewNop())

	got, err := svc.Get(ctx, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if got.CollegeName != "College of Engineering" || got.CampusLocationName != "Main Campus" {
		t.Errorf("got %+v", got)
	}
	if _, err := svc.Get(ctx, 5, 20); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestRegisterInterest(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	ended := upcomingEvent(2)
	ended.StartDate = now.Add(-5 * time.Hour)
	ended.EndDate = now.Add(-3 * time.Hour)

	closed := upcomingEvent(3)
	deadline := now.Add(-time.Hour)
	closed.RegistrationDeadline = &deadline

	events := newFakeEventStore(upcomingEvent(1), ended, closed)
	svc := service.NewEventService(events, nil, zap.NewNop())

	got, err := svc.RegisterInterest(ctx, 1, 20)
	if err != nil {
		t.Fatalf("RegisterInterest: %v", err)
	}
	if got.InterestedCount != 1 || events.events[1].InterestedCount != 1 {
		t.Errorf("interested = %d / %d", got.InterestedCount, events.events[1].InterestedCount)
	}

	if _, err := svc.RegisterInterest(ctx, 2, 20); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("ended event err = %v", err)
	}
	if _, err := svc.RegisterInterest(ctx, 3, 20); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("closed registration err = %v", err)
	}
	if events.events[2].InterestedCount != 0 || events.events[3].InterestedCount != 0 {
		t.Error("refused registrations were counted")
	}
}

func TestEventCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults fill the optional fields", func(t *testing.T) {
		events := newFakeEventStore()
		svc := service.NewEventService(events, nil, zap.NewNop())
		in := eventForm()
		got, err := svc.Create(ctx, in)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.Priority != domain.PriorityMedium || got.CampusLocation != domain.LocationMainCampus {
			t.Errorf("defaults = %q, %v", got.Priority, got.CampusLocation)
		}
		if !got.EndDate.Equal(in.StartDate.Add(time.Hour)) {
			t.Errorf("end = %v, want start+1h", got.EndDate)
		}
		stored := events.events[got.ID]
		if stored.OrganizerID == nil || *stored.OrganizerID != 7 {
			t.Errorf("organizer = %v", stored.OrganizerID)
		}
	})

	t.Run("unknown college", func(t *testing.T) {
		events := newFakeEventStore()
		svc := service.NewEventService(events, nil, zap.NewNop())
		in := eventForm()
		in.CollegeID = 9
		_, err := svc.Create(ctx, in)
		var appErr *domain.AppError
		if !errors.As(err, &appErr) || appErr.Kind != domain.ErrValidation || appErr.Details[0] != "Valid college is required" {
			t.Fatalf("err = %v", err)
		}
		if len(events.events) != 0 {
			t.Error("event stored")
		}
	})

	t.Run("validation messages", func(t *testing.T) {
		svc := service.NewEventService(newFakeEventStore(), nil, zap.NewNop())
		_, err := svc.Create(ctx, dto.EventInput{})
		var appErr *domain.AppError
		if !errors.As(err, &appErr) || len(appErr.Details) != 6 {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestEventUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	images := &fakeImageRemover{}
	events := newFakeEventStore(upcomingEvent(1))
	svc := service.NewEventService(events, images, zap.NewNop())

	in := eventForm()
	in.ID = 1
	in.ImageURL = "https://res.cloudinary.com/demo/image/upload/events/fair.jpg"
	got, err := svc.Update(ctx, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "Career Fair" || events.events[1].UpdatedAt.IsZero() {
		t.Errorf("got %+v", got)
	}
	if len(images.urls) != 1 || images.urls[0] != upcomingEvent(1).ImageURL {
		t.Errorf("replaced image not removed: %v", images.urls)
	}

	in.ID = 0
	if _, err := svc.Update(ctx, in); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero id err = %v", err)
	}
	in.ID = 42
	if _, err := svc.Update(ctx, in); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing err = %v", err)
	}

	events.updateErr = errors.New("lock wait timeout")
	in.ID = 1
	if _, err := svc.Update(ctx, in); !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("storage err = %v", err)
	}

	images.err = errors.New("cloudinary unavailable")
	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(events.deletes) != 1 || len(images.urls) != 2 {
		t.Errorf("deletes = %v, images = %v", events.deletes, images.urls)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestCollegeLookups(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventStore()
	events.programs = []models.Program{
		{ID: 1, Name: "BSCE", CollegeID: 1},
		{ID: 2, Name: "BSIT", CollegeID: 2},
	}
	svc := service.NewEventService(events, nil, zap.NewNop())

	colleges, err := svc.Colleges(ctx)
	if err != nil || len(colleges) != 1 {
		t.Errorf("colleges = %+v, %v", colleges, err)
	}
	all, _ := svc.Programs(ctx, 0)
	if len(all) != 2 {
		t.Errorf("programs = %+v", all)
	}
	mine, err := svc.ProgramsByCollege(ctx, 1)
	if err != nil || len(mine) != 1 || mine[0].Name != "BSCE" {
		t.Errorf("by college = %+v, %v", mine, err)
	}
	if _, err := svc.ProgramsByCollege(ctx, 0); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero college err = %v", err)
	}
	if _, err := svc.ProgramsByCollege(ctx, 2); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown college err = %v", err)
	}
}

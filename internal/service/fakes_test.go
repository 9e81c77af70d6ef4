package service_test

import (
	"context"
	"sync"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/repository"

	"gorm.io/gorm"
)

type fakeItemStore struct {
	items map[uint]*models.MarketplaceItem
	likes map[[2]uint]bool

	getErr    error
	updateErr error
	listErr   error
	likeErr   error

	gets          int
	statusUpdates int
	updates       int
	deletes       []uint
	lastFilter    repository.ItemFilter
}

func newFakeItemStore(items ...*models.MarketplaceItem) *fakeItemStore {
	f := &fakeItemStore{items: map[uint]*models.MarketplaceItem{}, likes: map[[2]uint]bool{}}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

func (f *fakeItemStore) Create(_ context.Context, item *models.MarketplaceItem) error {
	item.ID = uint(len(f.items) + 1)
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemStore) GetByID(_ context.Context, id uint) (*models.MarketplaceItem, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	it, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItemStore) UpdateStatus(_ context.Context, item *models.MarketplaceItem) error {
	f.statusUpdates++
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := f.items[item.ID]
	stored.Status = item.Status
	stored.UpdatedAt = item.UpdatedAt
	return nil
}

func (f *fakeItemStore) Update(_ context.Context, item *models.MarketplaceItem) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeItemStore) List(_ context.Context, filter repository.ItemFilter) ([]models.MarketplaceItem, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.MarketplaceItem
	for _, it := range f.items {
		if filter.ExcludeStatus != "" && it.Status == filter.ExcludeStatus {
			continue
		}
		if filter.Status != "" && it.Status != filter.Status {
			continue
		}
		if filter.SellerID != 0 && it.SellerID != filter.SellerID {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeItemStore) ToggleLike(_ context.Context, itemID, userID uint) (bool, int, error) {
	it, ok := f.items[itemID]
	if !ok {
		return false, 0, gorm.ErrRecordNotFound
	}
	key := [2]uint{itemID, userID}
	if f.likes[key] {
		delete(f.likes, key)
		it.LikesCount = max(it.LikesCount-1, 0)
		return false, it.LikesCount, nil
	}
	f.likes[key] = true
	it.LikesCount++
	return true, it.LikesCount, nil
}

func (f *fakeItemStore) IsLiked(_ context.Context, itemID, userID uint) (bool, error) {
	if f.likeErr != nil {
		return false, f.likeErr
	}
	return f.likes[[2]uint{itemID, userID}], nil
}

func (f *fakeItemStore) LikedItemIDs(_ context.Context, userID uint, itemIDs []uint) (map[uint]bool, error) {
	out := map[uint]bool{}
	for _, id := range itemIDs {
		if f.likes[[2]uint{id, userID}] {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeItemStore) Wishlist(_ context.Context, userID uint) ([]models.MarketplaceItem, error) {
	var out []models.MarketplaceItem
	for key := range f.likes {
		if key[1] == userID {
			out = append(out, *f.items[key[0]])
		}
	}
	return out, nil
}

type fakeReportStore struct {
	reports map[uint]*models.Report

	getErr  error
	saveErr error

	saves   int
	created []*models.Report
}

func newFakeReportStore(reports ...*models.Report) *fakeReportStore {
	f := &fakeReportStore{reports: map[uint]*models.Report{}}
	for _, r := range reports {
		f.reports[r.ID] = r
	}
	return f
}

func (f *fakeReportStore) GetByID(_ context.Context, id uint) (*models.Report, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r, ok := f.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReportStore) SaveResolution(_ context.Context, report *models.Report) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	stored := f.reports[report.ID]
	stored.Status = report.Status
	stored.ResolvedAt = report.ResolvedAt
	stored.ResolvedByUserID = report.ResolvedByUserID
	stored.AdminNotes = report.AdminNotes
	return nil
}

func (f *fakeReportStore) List(_ context.Context, status domain.ReportStatus) ([]models.Report, error) {
	var out []models.Report
	for _, r := range f.reports {
		if status == "" || r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) ListByItem(_ context.Context, itemID uint) ([]models.Report, error) {
	var out []models.Report
	for _, r := range f.reports {
		if r.MarketplaceItemID == itemID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) Create(_ context.Context, report *models.Report) error {
	report.ID = uint(len(f.reports) + len(f.created) + 1)
	f.created = append(f.created, report)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []dto.ModerationEvent
}

func (p *recordingPublisher) Publish(e dto.ModerationEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

type fakeImageRemover struct {
	urls []string
	err  error
}

func (f *fakeImageRemover) DeleteByURL(_ context.Context, url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

type fakeStatsStore struct {
	items      map[domain.ItemStatus]int64
	reports    map[domain.ReportStatus]int64
	students   map[string]int64
	events     int64
	categories []repository.CategoryCount
	colleges   []repository.GroupCount
	err        error
}

func (f *fakeStatsStore) CountItems(_ context.Context, status domain.ItemStatus) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if status == "" {
		var total int64
		for _, n := range f.items {
			total += n
		}
		return total, nil
	}
	return f.items[status], nil
}

func (f *fakeStatsStore) CountReports(_ context.Context, status domain.ReportStatus) (int64, error) {
	if status == "" {
		var total int64
		for _, n := range f.reports {
			total += n
		}
		return total, nil
	}
	return f.reports[status], nil
}

func (f *fakeStatsStore) CountUsers(_ context.Context, _ string, status string) (int64, error) {
	if status == "" {
		var total int64
		for _, n := range f.students {
			total += n
		}
		return total, nil
	}
	return f.students[status], nil
}

func (f *fakeStatsStore) CountEvents(context.Context) (int64, error) { return f.events, nil }

func (f *fakeStatsStore) CategoryCounts(context.Context) ([]repository.CategoryCount, error) {
	return f.categories, nil
}

func (f *fakeStatsStore) CollegeCounts(context.Context) ([]repository.GroupCount, error) {
	return f.colleges, nil
}

type fakeUserStore struct {
	users      map[uint]*models.User
	statusErr  error
	profileErr error
	updates    int
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: map[uint]*models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	u.ID = uint(len(f.users) + 1)
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUserStore) UpdateStatus(_ context.Context, u *models.User) error {
	f.updates++
	if f.statusErr != nil {
		return f.statusErr
	}
	f.users[u.ID].Status = u.Status
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, u *models.User) error {
	if f.profileErr != nil {
		return f.profileErr
	}
	stored := f.users[u.ID]
	stored.FullName = u.FullName
	stored.StudentNumber = u.StudentNumber
	stored.Email = u.Email
	stored.ContactNumber = u.ContactNumber
	stored.UpdatedAt = u.UpdatedAt
	return nil
}

func (f *fakeUserStore) ListStudents(context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == domain.RoleStudent {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeSellerCounter struct {
	reports  map[uint]int64
	listings map[uint]int64
}

func (f fakeSellerCounter) CountReportsForSeller(_ context.Context, id uint) (int64, error) {
	return f.reports[id], nil
}

func (f fakeSellerCounter) CountListingsForSeller(_ context.Context, id uint) (int64, error) {
	return f.listings[id], nil
}

type fakeEventStore struct {
	events    map[uint]*models.Event
	colleges  map[uint]*models.College
	programs  []models.Program
	bookmarks map[[2]uint]bool

	listErr   error
	updateErr error

	lastFilter repository.EventFilter
	deletes    []uint
}

func newFakeEventStore(events ...*models.Event) *fakeEventStore {
	f := &fakeEventStore{
		events:    map[uint]*models.Event{},
		colleges:  map[uint]*models.College{1: {ID: 1, Name: "College of Engineering"}},
		bookmarks: map[[2]uint]bool{},
	}
	for _, e := range events {
		f.events[e.ID] = e
	}
	return f
}

func (f *fakeEventStore) Create(_ context.Context, e *models.Event) error {
	e.ID = uint(len(f.events) + 1)
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id uint) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	cp.College = f.colleges[e.CollegeID]
	return &cp, nil
}

func (f *fakeEventStore) Update(_ context.Context, e *models.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.events, id)
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeEventStore) List(_ context.Context, filter repository.EventFilter) ([]models.Event, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Event
	for _, e := range f.events {
		if c := f.colleges[e.CollegeID]; filter.CollegeName != "" && (c == nil || c.Name != filter.CollegeName) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventStore) ToggleBookmark(_ context.Context, eventID, userID uint) (bool, int, error) {
	e, ok := f.events[eventID]
	if !ok {
		return false, 0, gorm.ErrRecordNotFound
	}
	key := [2]uint{eventID, userID}
	if f.bookmarks[key] {
		delete(f.bookmarks, key)
		e.BookmarksCount = max(e.BookmarksCount-1, 0)
		return false, e.BookmarksCount, nil
	}
	f.bookmarks[key] = true
	e.BookmarksCount++
	return true, e.BookmarksCount, nil
}

func (f *fakeEventStore) BookmarkedIDs(_ context.Context, userID uint, eventIDs []uint) (map[uint]bool, error) {
	out := map[uint]bool{}
	for _, id := range eventIDs {
		if f.bookmarks[[2]uint{id, userID}] {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeEventStore) Bookmarked(_ context.Context, userID uint) ([]models.Event, error) {
	var out []models.Event
	for key := range f.bookmarks {
		if key[1] == userID {
			out = append(out, *f.events[key[0]])
		}
	}
	return out, nil
}

func (f *fakeEventStore) IncrementInterest(_ context.Context, id uint) error {
	e, ok := f.events[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.InterestedCount++
	return nil
}

func (f *fakeEventStore) Colleges(context.Context) ([]models.College, error) {
	var out []models.College
	for _, c := range f.colleges {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeEventStore) GetCollege(_ context.Context, id uint) (*models.College, error) {
	c, ok := f.colleges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeEventStore) Programs(_ context.Context, collegeID uint) ([]models.Program, error) {
	var out []models.Program
	for _, p := range f.programs {
		if collegeID == 0 || p.CollegeID == collegeID {
			out = append(out, p)
		}
	}
	return out, nil
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"campushub/internal/database/dbtest"
	"campushub/internal/domain"
	"campushub/internal/models"
	"campushub/internal/repository"
)

func TestStatsCounts(t *testing.T) {
	db := dbtest.Open(t)
	stats := repository.NewStatsRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seller := seedUser(t, db, "seller", domain.RoleStudent, nil)
	other := seedUser(t, db, "other", domain.RoleStudent, nil)
	seedUser(t, db, "admin", domain.RoleAdmin, nil)
	if err := db.Model(other).Update("status", domain.UserStatusBanned).Error; err != nil {
		t.Fatal(err)
	}

	a := seedItem(t, db, seller.ID, domain.CategoryBooks, domain.ItemStatusActive, now)
	b := seedItem(t, db, seller.ID, domain.CategoryBooks, domain.ItemStatusFlagged, now)
	c := seedItem(t, db, other.ID, domain.CategoryFood, domain.ItemStatusSold, now)
	seedReport(t, db, a.ID, other.ID, domain.ReportStatusPending)
	seedReport(t, db, b.ID, other.ID, domain.ReportStatusResolved)
	seedReport(t, db, c.ID, seller.ID, domain.ReportStatusPending)
	seedEvent(t, db, seedCollege(t, db, "College of Engineering").ID, now)

	check := func(name string, got int64, err error, want int64) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s = %d, want %d", name, got, want)
		}
	}

	n, err := stats.CountItems(ctx, "")
	check("items", n, err, 3)
	n, err = stats.CountItems(ctx, domain.ItemStatusFlagged)
	check("flagged items", n, err, 1)
	n, err = stats.CountReports(ctx, domain.ReportStatusPending)
	check("pending reports", n, err, 2)
	n, err = stats.CountUsers(ctx, domain.RoleStudent, "")
	check("students", n, err, 2)
	n, err = stats.CountUsers(ctx, domain.RoleStudent, domain.UserStatusBanned)
	check("banned students", n, err, 1)
	n, err = stats.CountEvents(ctx)
	check("events", n, err, 1)
	n, err = stats.CountReportsForSeller(ctx, seller.ID)
	check("reports against seller", n, err, 2)
	n, err = stats.CountListingsForSeller(ctx, other.ID)
	check("listings of other", n, err, 1)
}

func TestStatsCategoryCounts(t *testing.T) {
	db := dbtest.Open(t)
	stats := repository.NewStatsRepository(db)
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		seedItem(t, db, 1, domain.CategoryElectronics, domain.ItemStatusActive, now)
	}
	seedItem(t, db, 1, domain.CategoryBooks, domain.ItemStatusActive, now)

	rows, err := stats.CategoryCounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Category != domain.CategoryElectronics || rows[0].Count != 3 {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].Category != domain.CategoryBooks || rows[1].Count != 1 {
		t.Errorf("second row = %+v", rows[1])
	}
}

func TestStatsCollegeCounts(t *testing.T) {
	db := dbtest.Open(t)
	stats := repository.NewStatsRepository(db)

	ccs := models.College{Name: "College of Computer Studies"}
	coe := models.College{Name: "College of Education"}
	for _, c := range []*models.College{&ccs, &coe} {
		if err := db.Create(c).Error; err != nil {
			t.Fatal(err)
		}
	}
	bsit := models.Program{Name: "BSIT", CollegeID: ccs.ID}
	bsed := models.Program{Name: "BSEd", CollegeID: coe.ID}
	for _, p := range []*models.Program{&bsit, &bsed} {
		if err := db.Create(p).Error; err != nil {
			t.Fatal(err)
		}
	}
	seedUser(t, db, "a", domain.RoleStudent, &bsit.ID)
	seedUser(t, db, "b", domain.RoleStudent, &bsit.ID)
	seedUser(t, db, "c", domain.RoleStudent, &bsed.ID)
	seedUser(t, db, "d", domain.RoleStudent, nil)

	rows, err := stats.CollegeCounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Name != ccs.Name || rows[0].Count != 2 {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].Name != coe.Name || rows[1].Count != 1 {
		t.Errorf("second row = %+v", rows[1])
	}
}

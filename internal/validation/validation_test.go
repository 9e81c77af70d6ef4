package validation_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/validation"
)

func validItem() dto.CreateMarketplaceItem {
	return dto.CreateMarketplaceItem{
		Title:       "Calculus textbook",
		Description: "Stewart 8th edition, a few highlights",
		Price:       500,
		Category:    domain.CategoryBooks,
		Condition:   domain.ConditionLightlyUsed,
		Location:    domain.LocationMainCampus,
		SellerID:    3,
	}
}

func TestCreateMarketplaceItemPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  []string
	}{
		{"zero", 0, []string{"Price must be greater than 0"}},
		{"negative", -5, []string{"Price must be greater than 0"}},
		{"over cap", 1000000, []string{"Price cannot exceed ₱999,999"}},
		{"at cap", 999999, nil},
		{"ordinary", 500, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validItem()
			in.Price = tt.price
			got := validation.CreateMarketplaceItem(in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateMarketplaceItemCollectsAllErrors(t *testing.T) {
	in := dto.CreateMarketplaceItem{
		Title:         strings.Repeat("a", 101),
		Description:   "  ",
		Price:         10,
		ImageURL:      "ftp://files.example.com/a.png",
		ContactNumber: "call me",
	}
	want := []string{
		"Title cannot exceed 100 characters",
		"Description is required",
		"Please enter a valid URL",
		"Please enter a valid contact number",
		"Please select a valid category",
		"Please select a valid condition",
		"Please select a valid campus location",
		"Valid seller ID is required",
	}
	if got := validation.CreateMarketplaceItem(in); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestUpdateMarketplaceItemRequiresID(t *testing.T) {
	in := dto.UpdateMarketplaceItem{
		Title:       "Lamp",
		Description: "Desk lamp",
		Price:       150,
		Category:    domain.CategoryFurniture,
		Condition:   domain.ConditionLikeNew,
		Location:    domain.LocationCamarin,
	}
	got := validation.UpdateMarketplaceItem(in)
	if len(got) != 1 || got[0] != "Invalid item ID" {
		t.Errorf("got %v", got)
	}
	in.ID = 4
	if got := validation.UpdateMarketplaceItem(in); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestIsValidURL(t *testing.T) {
	tests := map[string]bool{
		"https://res.cloudinary.com/demo/image/upload/a.jpg": true,
		"http://example.com":                                 true,
		"ftp://example.com/file":                             false,
		"/relative/path.png":                                 false,
		"not a url":                                          false,
		"https://":                                           false,
	}
	for in, want := range tests {
		if got := validation.IsValidURL(in); got != want {
			t.Errorf("IsValidURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := map[string]bool{
		"+63 917 123 4567": true,
		"(02) 8123-4567":   true,
		"09171234567":      true,
		"+-() ":            false,
		"0917-CALL-ME":     false,
	}
	for in, want := range tests {
		if got := validation.IsValidPhoneNumber(in); got != want {
			t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCreateUser(t *testing.T) {
	ok := dto.CreateUser{Username: "juan", FullName: "Juan Dela Cruz", Password: "secret1"}
	if got := validation.CreateUser(ok); len(got) != 0 {
		t.Fatalf("valid user rejected: %v", got)
	}

	bad := dto.CreateUser{Password: "123", Email: "nope", ContactNumber: "abc"}
	want := []string{
		"Username is required",
		"Full name is required",
		"Password must be between 6 and 100 characters",
		"Please enter a valid email address",
		"Please enter a valid contact number",
	}
	if got := validation.CreateUser(bad); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}

	for email, valid := range map[string]bool{
		"juan@school.edu.ph":        true,
		"Juan <juan@school.edu.ph>": false,
		"juan@":                     false,
		"plainaddress":              false,
	} {
		in := ok
		in.Email = email
		if got := len(validation.CreateUser(in)) == 0; got != valid {
			t.Errorf("email %q accepted = %v, want %v", email, got, valid)
		}
	}

	blank := ok
	blank.Password = "        "
	if got := validation.CreateUser(blank); len(got) != 1 || got[0] != "Password is required" {
		t.Errorf("blank password: %v", got)
	}
}

func TestUpdateProfile(t *testing.T) {
	got := validation.UpdateProfile(dto.UpdateProfile{FullName: strings.Repeat("x", 101), StudentNumber: "2021-00123", ContactNumber: "n/a"})
	want := []string{
		"Valid user ID is required",
		"Full name cannot exceed 100 characters",
		"Please enter a valid contact number",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
	ok := dto.UpdateProfile{UserID: 3, FullName: "Juan Dela Cruz", Email: "juan@school.edu.ph"}
	if got := validation.UpdateProfile(ok); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestEvent(t *testing.T) {
	start := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	valid := dto.EventInput{
		Title:          "Engineering Week Opening",
		Description:    "Kick-off program at the quadrangle",
		CollegeID:      2,
		CampusLocation: domain.LocationMainCampus,
		Venue:          "Quadrangle",
		StartDate:      start,
		EndDate:        start.Add(4 * time.Hour),
		Priority:       domain.PriorityHigh,
		Type:           "Academic",
	}
	if got := validation.Event(valid); got != nil {
		t.Fatalf("valid event rejected: %v", got)
	}

	t.Run("required fields", func(t *testing.T) {
		got := validation.Event(dto.EventInput{CampusLocation: domain.LocationCamarin, Priority: domain.PriorityLow})
		want := []string{
			"Event title is required",
			"Event description is required",
			"Valid college is required",
			"Event location is required",
			"Event date is required",
			"Event type is required",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v\nwant %v", got, want)
		}
	})

	t.Run("schedule and labels", func(t *testing.T) {
		in := valid
		in.EndDate = start.Add(-time.Hour)
		in.Priority = "Urgent"
		in.CampusLocation = 9
		in.ImageURL = "not a url"
		want := []string{
			"Please select a valid campus location",
			"Event end date cannot be before the start date",
			"Please enter a valid URL",
			"Please select a valid priority",
		}
		if got := validation.Event(in); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v\nwant %v", got, want)
		}
	})
}

func TestIDs(t *testing.T) {
	if got := validation.EventID(0); len(got) != 1 || got[0] != "Invalid event ID" {
		t.Errorf("got %v", got)
	}
	if got := validation.ItemID(7); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestModerationInputs(t *testing.T) {
	longNotes := strings.Repeat("n", 501)
	notes := "duplicate listing"

	t.Run("item status", func(t *testing.T) {
		got := validation.ItemStatusUpdate(dto.ItemStatusUpdate{ItemID: 0, Status: "Archived"})
		want := []string{"Valid item ID is required", "Invalid item status"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v", got)
		}
		if got := validation.ItemStatusUpdate(dto.ItemStatusUpdate{ItemID: 1, Status: domain.ItemStatusFlagged}); got != nil {
			t.Errorf("got %v", got)
		}
	})

	t.Run("report resolution", func(t *testing.T) {
		got := validation.ReportResolution(dto.ReportResolution{Status: "Closed", AdminNotes: &longNotes})
		want := []string{
			"Valid report ID is required",
			"Valid admin user ID is required",
			"Invalid report status",
			"Admin notes cannot exceed 500 characters",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v", got)
		}
		ok := dto.ReportResolution{ReportID: 2, Status: domain.ReportStatusResolved, AdminUserID: 1, AdminNotes: &notes}
		if got := validation.ReportResolution(ok); got != nil {
			t.Errorf("got %v", got)
		}
	})

	t.Run("flag", func(t *testing.T) {
		got := validation.FlagItem(dto.FlagItem{})
		if len(got) != 2 {
			t.Errorf("got %v", got)
		}
	})
}

func TestCreateReport(t *testing.T) {
	long := strings.Repeat("d", 1001)
	got := validation.CreateReport(dto.CreateReport{Reason: " ", Description: &long})
	want := []string{
		"Valid marketplace item ID is required",
		"Valid reporter ID is required",
		"Reason is required",
		"Description cannot exceed 1000 characters",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestLengthCountsCharacters(t *testing.T) {
	in := validItem()
	in.Title = strings.Repeat("ñ", 100)
	if got := validation.CreateMarketplaceItem(in); len(got) != 0 {
		t.Errorf("100 multi-byte characters rejected: %v", got)
	}
}

package domain

const (
	RoleStudent = "Student"
	RoleAdmin   = "Admin"
)

const (
	UserStatusActive = "Active"
	UserStatusBanned = "Banned"
)

// ItemStatus is the lifecycle tag of a marketplace listing.
type ItemStatus string

const (
	ItemStatusActive  ItemStatus = "Active"
	ItemStatusSold    ItemStatus = "Sold"
	ItemStatusFlagged ItemStatus = "Flagged"
)

var ItemStatuses = []ItemStatus{ItemStatusActive, ItemStatusSold, ItemStatusFlagged}

func (s ItemStatus) Valid() bool {
	for _, v := range ItemStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ReportStatus is the lifecycle tag of an abuse report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "Pending"
	ReportStatusResolved ReportStatus = "Resolved"
)

var ReportStatuses = []ReportStatus{ReportStatusPending, ReportStatusResolved}

func (s ReportStatus) Valid() bool {
	for _, v := range ReportStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type ItemCategory int

const (
	CategoryElectronics ItemCategory = iota + 1
	CategoryBooks
	CategoryClothing
	CategorySports
	CategoryFurniture
	CategorySchoolSupplies
	CategoryFood
	CategoryServices
	CategoryOther
)

var categoryNames = map[ItemCategory]string{
	CategoryElectronics:    "Electronics",
	CategoryBooks:          "Books",
	CategoryClothing:       "Clothing",
	CategorySports:         "Sports",
	CategoryFurniture:      "Furniture",
	CategorySchoolSupplies: "School Supplies",
	CategoryFood:           "Food",
	CategoryServices:       "Services",
	CategoryOther:          "Other",
}

func (c ItemCategory) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c ItemCategory) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "Unknown"
}

type ItemCondition int

const (
	ConditionBrandNew ItemCondition = iota + 1
	ConditionLikeNew
	ConditionLightlyUsed
	ConditionWellUsed
	ConditionHeavilyUsed
)

var conditionNames = map[ItemCondition]string{
	ConditionBrandNew:    "Brand New",
	ConditionLikeNew:     "Like New",
	ConditionLightlyUsed: "Lightly Used",
	ConditionWellUsed:    "Well Used",
	ConditionHeavilyUsed: "Heavily Used",
}

func (c ItemCondition) Valid() bool {
	_, ok := conditionNames[c]
	return ok
}

func (c ItemCondition) String() string {
	if n, ok := conditionNames[c]; ok {
		return n
	}
	return "Unknown"
}

type CampusLocation int

const (
	LocationMainCampus CampusLocation = iota + 1
	LocationCongressional
	LocationBagongSilang
	LocationCamarin
)

// CampusLocations lists every location that has a display name.
var CampusLocations = []CampusLocation{
	LocationMainCampus,
	LocationCongressional,
	LocationBagongSilang,
	LocationCamarin,
}

var campusLocationNames = map[CampusLocation]string{
	LocationMainCampus:    "Main Campus",
	LocationCongressional: "Congressional Extension Campus",
	LocationBagongSilang:  "Bagong Silang Extension Campus",
	LocationCamarin:       "Camarin Extension Campus",
}

func (l CampusLocation) Valid() bool {
	_, ok := campusLocationNames[l]
	return ok
}

// Moderation feed event types.
const (
	EventItemStatusChanged = "item_status_changed"
	EventReportResolved    = "report_resolved"
	EventItemDeleted       = "item_deleted"
	EventUserBanned        = "user_banned"
	EventUserUnbanned      = "user_unbanned"
)

const (
	AuditItemStatus    = "item_status_update"
	AuditItemFlag      = "item_flag"
	AuditItemDelete    = "item_delete"
	AuditReportResolve = "report_resolve"
	AuditReportCreate  = "report_create"
	AuditUserBan       = "user_ban"
	AuditUserUnban     = "user_unban"
	AuditEventCreate   = "event_create"
	AuditEventUpdate   = "event_update"
	AuditEventDelete   = "event_delete"
	AuditProfileUpdate = "profile_update"
)

// EventStatus is derived from an event's schedule, never stored.
type EventStatus string

const (
	EventUpcoming EventStatus = "Upcoming"
	EventOngoing  EventStatus = "Ongoing"
	EventEnded    EventStatus = "Ended"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

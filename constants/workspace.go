package constants

const (
	WORKSPACE_DESK           = "desk"
	WORKSPACE_PRIVATE_OFFICE = "private-office"
	WORKSPACE_MEETING_ROOM   = "meeting-room"
)

const (
	DESK_HOURLY_HOT    = "hourly_hot_desk"
	DESK_MONTHLY_HOT   = "monthly_hot_desk"
	DESK_MONTHLY_FIXED = "monthly_fixed_desk"
)

const (
	WORKSPACE_ACTIVE   = "active"
	WORKSPACE_INACTIVE = "inactive"
)

const (
	VIEWING_PENDING  = "pending"
	VIEWING_ACCEPTED = "accepted"
	VIEWING_DECLINED = "declined"
	VIEWING_CANCELED = "canceled"
)

func ViewingStatuses() []string {
	return []string{VIEWING_PENDING, VIEWING_ACCEPTED, VIEWING_DECLINED, VIEWING_CANCELED}
}

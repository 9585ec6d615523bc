package constants

// Email events.
const (
	EVENT_LOCATION_ADDED   = "location_added"
	EVENT_LOCATION_DELETED = "location_deleted"
	EVENT_VIEWING_REQUEST  = "viewing_request"
	EVENT_VIEWING_APPROVED = "viewing_approved"
	EVENT_VIEWING_REMINDER = "viewing_reminder"
)

// Seller in-app notification statuses.
const (
	INTERNAL_VIEWING_REQUEST  = "viewing_request"
	INTERNAL_VIEWING_ACCEPTED = "viewing_accepted"
	INTERNAL_VIEWING_DECLINED = "viewing_declined"
)

// Buyer push notification types.
const (
	PUSH_VIEWING_ACCEPTED = "viewing_accepted"
)

// Front-end routes used in notification links.
const (
	FRONT_MAIN_PORTAL   = "/"
	FRONT_IN_DEPTH      = "/workspace/%d"
	FRONT_NOTIFICATIONS = "/notifications"
	FRONT_VIEWING_PASS  = "/viewing/pass/%s"

	ADMIN_LOCATION_EDIT = "admin_app_location_edit"
)

package constants

const (
	REQUESTED_DATA_IS_EMPTY    = "Requested data is empty"
	DATA_INPUT_IS_NOT_NUMBER   = "Invalid id"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read request data"

	LOCATION_NOT_FOUND   = "Location with id %d was not found"
	LOCATION_UPDATED     = "Location successfully updated"
	WORKSPACE_NOT_FOUND  = "Workspace with id %d was not found"
	AREA_DOES_NOT_EXIST  = "This value do not exist"
	COVER_IMAGE_UPDATED  = "Cover image successfully updated"
	INVALID_IMAGE_FORMAT = "Only PNG, JPG and JPEG images are supported"

	CHOOSE_START_DATE           = "Please, choose a start date"
	VIEWING_TEMP_UNAVAILABLE    = "Viewing for this workspace is temporarily unavailable. Please, try again later"
	VIEWING_ADDED               = "You have been successfully added to the viewing schedule"
	WRONG_STATUS                = "Wrong status"
	BOOKING_RECORD_NOT_EXIST    = "Booking record doesn't exist"
	NOTHING_TO_CHANGE           = "Nothing to change"
	VIEWING_RECORD_NOT_FOUND    = "Viewing record was not found"
	VIEWING_ALREADY_CANCELED    = "Viewing already canceled"
	VIEWING_WORKSPACE_NOT_FOUND = "Workspace was not found"
	WORKSPACE_NOT_AVAILABLE     = "Workspace is not available. Please, try again later"
	NO_LOCATION_FOUND           = "No location was found"
	CANNOT_CANCEL_EXPIRED       = "You cannot cancel the expired viewing"
	VIEWING_CANCELED_MESSAGE    = "Viewing successfully canceled"

	NOTIFICATION_NOT_FOUND = "Notification with id %d was not found"
	NOTIFICATION_CHECKED   = "Notification marked as checked"

	MISSING_TOKEN       = "Missing token"
	INVALID_TOKEN       = "Invalid token"
	ACCOUNT_NOT_FOUND   = "Account does not exist"
	ACCOUNT_NOT_ACTIVE  = "Account is not active"
	FORBIDDEN           = "You are not allowed to access this resource"
	MISSING_LOGIN_INPUT = "Email and password are required"
	INVALID_CREDENTIALS = "Invalid email or password"
	EMAIL_ALREADY_EXIST = "This email is already registered"
)

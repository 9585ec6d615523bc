package constants

const (
	ROLE_SELLER = "seller"
	ROLE_BUYER  = "buyer"
	ROLE_ADMIN  = "admin"
)

// Buyer funnel status, ordered from least to most engaged.
const (
	USER_STATUS_REGISTERED     = "registered"
	USER_STATUS_BOOKED_VIEWING = "booked-viewing"
	USER_STATUS_BOOKED         = "booked"
)

var UserStatusRank = map[string]int{
	USER_STATUS_REGISTERED:     0,
	USER_STATUS_BOOKED_VIEWING: 1,
	USER_STATUS_BOOKED:         2,
}

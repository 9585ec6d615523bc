package manager

import (
	"coworking_market/constants"
	"coworking_market/model"
)

// viewingCheck is one named precondition of a buyer action on a viewing.
type viewingCheck struct {
	name   string
	reason string
	pass   func(buyer *model.User, v *model.Viewing) bool
}

// CheckResult is either OK with the resolved entities or the first failed check.
type CheckResult struct {
	OK        bool
	Check     string
	Reason    string
	Viewing   *model.Viewing
	WorkSpace *model.WorkSpace
	Location  *model.Location
}

// Order matters: later checks dereference what earlier ones proved present.
var cancelChecks = []viewingCheck{
	{
		name:   "found",
		reason: constants.VIEWING_RECORD_NOT_FOUND,
		pass:   func(buyer *model.User, v *model.Viewing) bool { return ownsViewing(buyer, v) },
	},
	{
		name:   "not-canceled",
		reason: constants.VIEWING_ALREADY_CANCELED,
		pass:   func(_ *model.User, v *model.Viewing) bool { return v.Status != constants.VIEWING_CANCELED },
	},
	{
		name:   "workspace-exists",
		reason: constants.VIEWING_WORKSPACE_NOT_FOUND,
		pass:   func(_ *model.User, v *model.Viewing) bool { return v.WorkSpace != nil },
	},
	{
		name:   "workspace-active",
		reason: constants.WORKSPACE_NOT_AVAILABLE,
		pass:   func(_ *model.User, v *model.Viewing) bool { return v.WorkSpace.Status == constants.WORKSPACE_ACTIVE },
	},
	{
		name:   "location-exists",
		reason: constants.NO_LOCATION_FOUND,
		pass:   func(_ *model.User, v *model.Viewing) bool { return v.WorkSpace.Location != nil },
	},
}

func runChecks(checks []viewingCheck, buyer *model.User, v *model.Viewing) CheckResult {
	for _, c := range checks {
		if !c.pass(buyer, v) {
			return CheckResult{Check: c.name, Reason: c.reason}
		}
	}
	return CheckResult{
		OK:        true,
		Viewing:   v,
		WorkSpace: v.WorkSpace,
		Location:  v.WorkSpace.Location,
	}
}

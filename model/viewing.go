package model

import "time"

type Viewing struct {
	DTO
	WorkSpaceId          uint                  `gorm:"not null;index" json:"workSpaceId"`
	WorkSpace            *WorkSpace            `gorm:"foreignKey:WorkSpaceId;references:ID" json:"-"`
	UserId               uint                  `gorm:"not null;index" json:"userId"`
	User                 *User                 `gorm:"foreignKey:UserId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	StartTime            time.Time             `gorm:"not null;index" json:"startTime"`
	EndTime              *time.Time            `json:"endTime"`
	Phone                string                `gorm:"size:20" json:"phone"`
	Status               string                `gorm:"not null;index" json:"status"`
	PassCode             string                `gorm:"size:36;index" json:"passCode"`
	InternalNotification *InternalNotification `gorm:"foreignKey:ViewingId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// CheckedInternalNotification reports whether the seller has already
// looked at the notification created for this viewing.
func (v Viewing) CheckedInternalNotification() bool {
	return v.InternalNotification != nil && v.InternalNotification.Checked
}

type AddViewingInput struct {
	StartTime int64  `json:"startTime"`
	EndTime   *int64 `json:"endTime" validate:"omitempty,gtefield=StartTime"`
	Phone     string `json:"phone" validate:"required,min=6,max=20"`
}

type UpdateViewingStatusInput struct {
	Status string `json:"status"`
}

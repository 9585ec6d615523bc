package model

import "gorm.io/datatypes"

// InternalNotification is the seller side in-app record tied to a viewing.
type InternalNotification struct {
	DTO
	UserId    uint              `gorm:"not null;index" json:"userId"`
	ViewingId *uint             `gorm:"index" json:"viewingId"`
	Status    string            `gorm:"not null" json:"status"`
	Params    datatypes.JSONMap `gorm:"type:jsonb" json:"params"`
	Checked   bool              `gorm:"not null;default:false" json:"checked"`
}

// PushNotification is the buyer side in-app record, also pushed live.
type PushNotification struct {
	DTO
	UserId    uint              `gorm:"not null;index" json:"userId"`
	Type      string            `gorm:"not null" json:"type"`
	RelatedId uint              `json:"relatedId"`
	Params    datatypes.JSONMap `gorm:"type:jsonb" json:"params"`
	Checked   bool              `gorm:"not null;default:false" json:"checked"`
}

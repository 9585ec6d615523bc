package model

import (
	"time"

	"gorm.io/datatypes"
)

type WorkSpace struct {
	DTO
	LocationId        uint           `gorm:"not null;index" json:"locationId"`
	Location          *Location      `gorm:"foreignKey:LocationId;references:ID" json:"-"`
	Type              string         `gorm:"not null;index" json:"type"`
	DeskType          *string        `json:"deskType"`
	Quantity          int            `gorm:"not null" json:"quantity"`
	Price             float64        `gorm:"not null" json:"price"`
	Size              *int           `json:"size"`
	Capacity          *int           `json:"capacity"`
	OpensFrom         *string        `gorm:"size:5" json:"opensFrom"`
	ClosesAt          *string        `gorm:"size:5" json:"closesAt"`
	MinContractLength *int           `json:"minContractLength"`
	AvailableFrom     *time.Time     `json:"availableFrom"`
	Facilities        datatypes.JSON `gorm:"type:jsonb" json:"facilities"`
	Description       string         `gorm:"type:text" json:"description"`
	Status            string         `gorm:"not null;default:active" json:"status"`
	Viewings          []Viewing      `gorm:"foreignKey:WorkSpaceId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Bookings          []Booking      `gorm:"foreignKey:WorkSpaceId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// WorkspaceInfo is the short human label used in notification texts.
func (w WorkSpace) WorkspaceInfo() string {
	switch w.Type {
	case "desk":
		if w.DeskType != nil {
			switch *w.DeskType {
			case "hourly_hot_desk":
				return "Hourly hot desk"
			case "monthly_hot_desk":
				return "Monthly hot desk"
			case "monthly_fixed_desk":
				return "Monthly fixed desk"
			}
		}
		return "Desk"
	case "private-office":
		return "Private office"
	case "meeting-room":
		return "Meeting room"
	}
	return w.Type
}

// WorkspaceCounts holds aggregated relation counts for listings.
type WorkspaceCounts struct {
	Bookings int64
	Viewings int64
}

type AddWorkspaceInput struct {
	Type              string   `json:"type" validate:"required,oneof=desk private-office meeting-room"`
	Quantity          int      `json:"quantity" validate:"required,min=1"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	Size              *int     `json:"size" validate:"required_unless=Type desk,omitempty,min=1"`
	Capacity          *int     `json:"capacity" validate:"required_unless=Type desk,omitempty,min=1"`
	OpensFrom         *string  `json:"opensFrom" validate:"required_if=DeskType hourly_hot_desk,omitempty,datetime=15:04"`
	ClosesAt          *string  `json:"closesAt" validate:"required_if=DeskType hourly_hot_desk,omitempty,datetime=15:04"`
	DeskType          string   `json:"deskType" validate:"required_if=Type desk,omitempty,oneof=hourly_hot_desk monthly_hot_desk monthly_fixed_desk"`
	MinContractLength *int     `json:"minContractLength" validate:"required_if=Type private-office,required_if=DeskType monthly_hot_desk,required_if=DeskType monthly_fixed_desk,omitempty,min=1"`
	AvailableFrom     *int64   `json:"availableFrom" validate:"required_if=Type private-office,omitempty,gt=0"`
	Facilities        []string `json:"facilities" validate:"omitempty,dive,max=100"`
	Description       string   `json:"description" validate:"required"`
}

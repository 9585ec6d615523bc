package model

import "gorm.io/datatypes"

type Location struct {
	DTO
	UserId          uint           `gorm:"not null;index" json:"userId"`
	User            *User          `gorm:"foreignKey:UserId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AreaId          *uint          `json:"areaId"`
	Area            *Area          `gorm:"foreignKey:AreaId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"area"`
	Name            string         `gorm:"not null" json:"name"`
	Address         string         `gorm:"not null" json:"address"`
	OptionalAddress string         `json:"optionalAddress"`
	Latitude        string         `json:"latitude"`
	Longitude       string         `json:"longitude"`
	Nearby          datatypes.JSON `gorm:"type:jsonb" json:"nearby"`
	Town            string         `json:"town"`
	Postcode        string         `gorm:"size:10" json:"postcode"`
	Description     string         `gorm:"type:text" json:"description"`
	WorkSpaceTypes  datatypes.JSON `gorm:"type:jsonb" json:"workSpaceTypes"`
	CoverImage      string         `json:"coverImage"`
	WorkSpaces      []WorkSpace    `gorm:"foreignKey:LocationId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"workSpaces"`
}

type NearbyPlace struct {
	Type     string `json:"type" validate:"required,max=50"`
	Name     string `json:"name" validate:"required,max=255"`
	Distance string `json:"distance" validate:"omitempty,max=50"`
	Duration string `json:"duration" validate:"omitempty,max=50"`
}

type CreateLocationInput struct {
	Name            string        `json:"name" validate:"required,max=255"`
	Address         string        `json:"address" validate:"required,max=255"`
	OptionalAddress string        `json:"optionalAddress" validate:"omitempty,max=255"`
	Latitude        string        `json:"latitude" validate:"required,latitude"`
	Longitude       string        `json:"longitude" validate:"required,longitude"`
	Nearby          []NearbyPlace `json:"nearby" validate:"omitempty,dive"`
	Town            string        `json:"town" validate:"required,max=100"`
	Postcode        string        `json:"postcode" validate:"required,max=10"`
	Description     string        `json:"description" validate:"required"`
	WorkSpaceTypes  []string      `json:"workSpaceTypes" validate:"omitempty,dive,oneof=desk private-office meeting-room"`
	Area            string        `json:"area" validate:"required,max=100"`
}

type UpdateLocationInput struct {
	Name            *string        `json:"name" validate:"omitempty,min=1,max=255"`
	Address         *string        `json:"address" validate:"omitempty,min=1,max=255"`
	OptionalAddress *string        `json:"optionalAddress" validate:"omitempty,max=255"`
	Latitude        *string        `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *string        `json:"longitude" validate:"omitempty,longitude"`
	Nearby          *[]NearbyPlace `json:"nearby" validate:"omitempty,dive"`
	Town            *string        `json:"town" validate:"omitempty,min=1,max=100"`
	Postcode        *string        `json:"postcode" validate:"omitempty,min=1,max=10"`
	Description     *string        `json:"description" validate:"omitempty,min=1"`
	WorkSpaceTypes  *[]string      `json:"workSpaceTypes" validate:"omitempty,dive,oneof=desk private-office meeting-room"`
	Area            *string        `json:"area" validate:"omitempty,max=100"`
}

package model

import "time"

type Booking struct {
	DTO
	WorkSpaceId uint      `gorm:"not null;index" json:"workSpaceId"`
	UserId      uint      `gorm:"not null;index" json:"userId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `gorm:"not null" json:"status"`
}

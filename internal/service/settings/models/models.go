package models

import (
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// DayHoursResponse часы работы салона на один день недели
type DayHoursResponse struct {
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekdayName"`
	Open        string `json:"open"`
	Close       string `json:"close"`
}

// WeekHoursResponse расписание салона на всю неделю
type WeekHoursResponse struct {
	Days []*DayHoursResponse `json:"days"`
}

// FromDomainDayHours конвертирует часы работы дня в response
func FromDomainDayHours(weekday time.Weekday, hours domain.DayHours) *DayHoursResponse {
	return &DayHoursResponse{
		Weekday:     int(weekday),
		WeekdayName: weekday.String(),
		Open:        hours.Open.String(),
		Close:       hours.Close.String(),
	}
}

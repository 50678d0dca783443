package dto

import "time"

type CalendarOutput struct {
	ID      string
	Summary string
}

type EventOutput struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}

type AuthOutput struct {
	URL   string
	State string
}

package schema

import (
	"time"
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Child is the identity context handed in by the account layer. The
// analytics core never loads or mutates it.
type Child struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sex         Sex       `json:"sex"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// AgeInDays returns the child age in whole days at the given time.
func AgeInDays(dateOfBirth, at time.Time) int {
	if at.Before(dateOfBirth) {
		return 0
	}
	return int(at.Sub(dateOfBirth).Hours() / 24)
}

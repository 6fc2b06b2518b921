package utils

import "time"

// CalculateAge returns full years between birthDate and now, accounting for
// whether this year's birthday already passed.
func CalculateAge(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

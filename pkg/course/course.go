package course

import "time"

type Course struct {
	Id          int
	Key         string
	DisplayName string
	StartDate   time.Time
}

// DisplayNameOrDefault returns the course display name, falling back to the
// course key when no display name was set.
func (c Course) DisplayNameOrDefault() string {
	if c.DisplayName == "" {
		return c.Key
	}
	return c.DisplayName
}

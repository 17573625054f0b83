package model

import "time"

// ShirtSize is a single-letter choice enumeration with display labels.
type ShirtSize string

const (
	ShirtSmall  ShirtSize = "S"
	ShirtMedium ShirtSize = "M"
	ShirtLarge  ShirtSize = "L"
)

// Valid reports whether s is one of the defined sizes.
func (s ShirtSize) Valid() bool {
	switch s {
	case ShirtSmall, ShirtMedium, ShirtLarge:
		return true
	}
	return false
}

// Display returns the human-readable label for the stored value.
func (s ShirtSize) Display() string {
	switch s {
	case ShirtSmall:
		return "Small"
	case ShirtMedium:
		return "Medium"
	case ShirtLarge:
		return "Large"
	}
	return string(s)
}

type Person struct {
	ID        int        `db:"id,primaryKey"`
	Name      string     `db:"name"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	ShirtSize ShirtSize  `db:"shirt_size"`
	BirthDate *time.Time `db:"birth_date"`

	Groups []Group `db:"-" rel:"many_to_many,join_table:memberships,foreign_key:person_id,references:group_id"`
}

func (p Person) String() string { return p.Name }

// FullName concatenates the person's first and last name.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Generation boundaries for BoomerStatus.
var (
	preBoomerBefore = time.Date(1945, time.August, 1, 0, 0, 0, 0, time.UTC)
	boomerBefore    = time.Date(1965, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// BoomerStatus classifies the person by birth date. Returns "Unknown" when
// the birth date is not recorded.
func (p Person) BoomerStatus() string {
	switch {
	case p.BirthDate == nil:
		return "Unknown"
	case p.BirthDate.Before(preBoomerBefore):
		return "Pre-boomer"
	case p.BirthDate.Before(boomerBefore):
		return "Baby boomer"
	default:
		return "Post-boomer"
	}
}

type Group struct {
	ID   int    `db:"id,primaryKey"`
	Name string `db:"name"`

	Members []Person `db:"-" rel:"many_to_many,join_table:memberships,foreign_key:group_id,references:person_id"`
}

func (g Group) String() string { return g.Name }

// Membership is the through model linking Person and Group. The relation
// itself is many-to-many; the membership row carries its own attributes.
type Membership struct {
	ID           int       `db:"id,primaryKey"`
	PersonID     int       `db:"person_id"`
	GroupID      int       `db:"group_id"`
	DateJoined   time.Time `db:"date_joined"`
	InviteReason string    `db:"invite_reason"`

	Person *Person `db:"-" rel:"belongs_to,foreign_key:person_id"`
	Group  *Group  `db:"-" rel:"belongs_to,foreign_key:group_id"`
}

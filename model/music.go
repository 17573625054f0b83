package model

import "time"

type Musician struct {
	ID         int    `db:"id,primaryKey"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	Instrument string `db:"instrument"`

	Albums []Album `db:"-" rel:"has_many,foreign_key:artist_id"`
}

type Album struct {
	ID          int       `db:"id,primaryKey"`
	ArtistID    int       `db:"artist_id"`
	Name        string    `db:"name"`
	ReleaseDate time.Time `db:"release_date"`
	NumStars    int       `db:"num_stars"`

	Artist *Musician `db:"-" rel:"belongs_to,foreign_key:artist_id"`
}

package model

import "time"

type Blog struct {
	ID      int    `db:"id,primaryKey"`
	Name    string `db:"name"`
	Tagline string `db:"tagline"`

	Entries []Entry `db:"-" rel:"has_many,foreign_key:blog_id"`
}

func (b Blog) String() string { return b.Name }

// Entry is a blog post. ModDate is stamped automatically: set on create
// when zero, refreshed on every update.
type Entry struct {
	ID                int       `db:"id,primaryKey"`
	BlogID            int       `db:"blog_id"`
	Headline          string    `db:"headline"`
	BodyText          string    `db:"body_text"`
	PubDate           time.Time `db:"pub_date"`
	ModDate           time.Time `db:"mod_date"`
	NumberOfComments  int       `db:"number_of_comments"`
	NumberOfPingbacks int       `db:"number_of_pingbacks"`
	Rating            int       `db:"rating"`

	Blog    *Blog    `db:"-" rel:"belongs_to,foreign_key:blog_id"`
	Authors []Author `db:"-" rel:"many_to_many,join_table:entry_authors,foreign_key:entry_id,references:author_id"`
}

func (e Entry) String() string { return e.Headline }

type Author struct {
	ID    int    `db:"id,primaryKey"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Age   int    `db:"age"`
}

func (a Author) String() string { return a.Name }

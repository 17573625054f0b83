package model

import "time"

type Publisher struct {
	ID   int    `db:"id,primaryKey"`
	Name string `db:"name"`

	Books []Book `db:"-" rel:"has_many,foreign_key:publisher_id"`
}

func (p Publisher) String() string { return p.Name }

type Book struct {
	ID          int       `db:"id,primaryKey"`
	Name        string    `db:"name"`
	Pages       int       `db:"pages"`
	Price       float64   `db:"price"`
	Rating      float64   `db:"rating"`
	PublisherID int       `db:"publisher_id"`
	PubDate     time.Time `db:"pubdate"`

	Publisher *Publisher `db:"-" rel:"belongs_to,foreign_key:publisher_id"`
	Authors   []Author   `db:"-" rel:"many_to_many,join_table:book_authors,foreign_key:book_id,references:author_id"`
}

func (b Book) String() string { return b.Name }

type Store struct {
	ID   int    `db:"id,primaryKey"`
	Name string `db:"name"`

	Books []Book `db:"-" rel:"many_to_many,join_table:store_books,foreign_key:store_id,references:book_id"`
}

func (s Store) String() string { return s.Name }

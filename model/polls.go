// Package model is the entity catalog: polls, people and their group
// memberships, blogs, a small book trade, and a handful of single-purpose
// models that exist to exercise one relationship or query feature each.
package model

import "time"

// recentWindow is how far back a question still counts as recently published.
const recentWindow = 24 * time.Hour

type Question struct {
	ID           int       `db:"id,primaryKey"`
	QuestionText string    `db:"question_text"`
	PubDate      time.Time `db:"pub_date"`

	Choices []Choice `db:"-" rel:"has_many,foreign_key:question_id"`
}

func (q Question) String() string { return q.QuestionText }

// WasPublishedRecently reports whether the question was published within
// the last day, relative to now.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-recentWindow))
}

type Choice struct {
	ID         int    `db:"id,primaryKey"`
	QuestionID int    `db:"question_id"`
	ChoiceText string `db:"choice_text"`
	Votes      int    `db:"votes"`

	Question *Question `db:"-" rel:"belongs_to,foreign_key:question_id"`
}

func (c Choice) String() string { return c.ChoiceText }

// Package query binds the model types to the orm layer: one factory per
// table, plus the scan, column-value and preload functions the factories
// register. The function shapes follow a strict convention so that every
// model reads the same way.
package query

import (
	"context"
	"database/sql"

	"modelbook/model"
	"modelbook/orm"
	"modelbook/scope"
)

// Questions returns a new Query for the questions table.
func Questions(db orm.Querier) *orm.Query[model.Question] {
	q := orm.NewQuery[model.Question](
		db, orm.ResolveTableName[model.Question](orm.DeriveTableName("Question")), questionsColumns, "id",
		scanQuestion, questionColumnValuePairs, setQuestionPK,
	)
	q.RegisterJoin("Choices", orm.JoinConfig{
		TargetTable: "choices", TargetColumn: "question_id",
		SourceTable: "questions", SourceColumn: "id",
	})
	q.RegisterPreloader("Choices", preloadQuestionChoices)
	return q
}

var questionsColumns = []string{"id", "question_text", "pub_date"}

func scanQuestion(rows *sql.Rows) (model.Question, error) {
	cols, _ := rows.Columns()
	var v model.Question
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "question_text":
			dest[i] = &v.QuestionText
		case "pub_date":
			dest[i] = &v.PubDate
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func questionColumnValuePairs(v *model.Question, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "question_text", "pub_date"},
			[]any{v.ID, v.QuestionText, v.PubDate}
	}
	return []string{"question_text", "pub_date"},
		[]any{v.QuestionText, v.PubDate}
}

func setQuestionPK(v *model.Question, id int64) {
	v.ID = int(id)
}

func preloadQuestionChoices(ctx context.Context, db orm.Querier, results []model.Question) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	related, err := Choices(db).Scopes(scope.In("question_id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byFK := make(map[int][]model.Choice)
	for _, r := range related {
		byFK[r.QuestionID] = append(byFK[r.QuestionID], r)
	}
	for i := range results {
		results[i].Choices = byFK[results[i].ID]
	}
	return nil
}

// Choices returns a new Query for the choices table.
func Choices(db orm.Querier) *orm.Query[model.Choice] {
	q := orm.NewQuery[model.Choice](
		db, orm.ResolveTableName[model.Choice](orm.DeriveTableName("Choice")), choicesColumns, "id",
		scanChoice, choiceColumnValuePairs, setChoicePK,
	)
	q.RegisterJoin("Question", orm.JoinConfig{
		TargetTable: "questions", TargetColumn: "id",
		SourceTable: "choices", SourceColumn: "question_id",
	})
	q.RegisterPreloader("Question", preloadChoiceQuestion)
	return q
}

var choicesColumns = []string{"id", "question_id", "choice_text", "votes"}

func scanChoice(rows *sql.Rows) (model.Choice, error) {
	cols, _ := rows.Columns()
	var v model.Choice
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "question_id":
			dest[i] = &v.QuestionID
		case "choice_text":
			dest[i] = &v.ChoiceText
		case "votes":
			dest[i] = &v.Votes
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func choiceColumnValuePairs(v *model.Choice, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "question_id", "choice_text", "votes"},
			[]any{v.ID, v.QuestionID, v.ChoiceText, v.Votes}
	}
	return []string{"question_id", "choice_text", "votes"},
		[]any{v.QuestionID, v.ChoiceText, v.Votes}
}

func setChoicePK(v *model.Choice, id int64) {
	v.ID = int(id)
}

func preloadChoiceQuestion(ctx context.Context, db orm.Querier, results []model.Choice) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].QuestionID
	}
	related, err := Questions(db).Scopes(scope.In("id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]*model.Question)
	for i := range related {
		byPK[related[i].ID] = &related[i]
	}
	for i := range results {
		results[i].Question = byPK[results[i].QuestionID]
	}
	return nil
}

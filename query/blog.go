package query

import (
	"context"
	"database/sql"
	"time"

	"modelbook/model"
	"modelbook/orm"
	"modelbook/scope"
)

// Blogs returns a new Query for the blogs table.
func Blogs(db orm.Querier) *orm.Query[model.Blog] {
	q := orm.NewQuery[model.Blog](
		db, orm.ResolveTableName[model.Blog](orm.DeriveTableName("Blog")), blogsColumns, "id",
		scanBlog, blogColumnValuePairs, setBlogPK,
	)
	q.RegisterJoin("Entries", orm.JoinConfig{
		TargetTable: "entries", TargetColumn: "blog_id",
		SourceTable: "blogs", SourceColumn: "id",
	})
	q.RegisterPreloader("Entries", preloadBlogEntries)
	return q
}

var blogsColumns = []string{"id", "name", "tagline"}

func scanBlog(rows *sql.Rows) (model.Blog, error) {
	cols, _ := rows.Columns()
	var v model.Blog
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "name":
			dest[i] = &v.Name
		case "tagline":
			dest[i] = &v.Tagline
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func blogColumnValuePairs(v *model.Blog, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name", "tagline"},
			[]any{v.ID, v.Name, v.Tagline}
	}
	return []string{"name", "tagline"},
		[]any{v.Name, v.Tagline}
}

func setBlogPK(v *model.Blog, id int64) {
	v.ID = int(id)
}

func preloadBlogEntries(ctx context.Context, db orm.Querier, results []model.Blog) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	related, err := Entries(db).Scopes(scope.In("blog_id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byFK := make(map[int][]model.Entry)
	for _, r := range related {
		byFK[r.BlogID] = append(byFK[r.BlogID], r)
	}
	for i := range results {
		results[i].Entries = byFK[results[i].ID]
	}
	return nil
}

// Entries returns a new Query for the entries table.
func Entries(db orm.Querier) *orm.Query[model.Entry] {
	q := orm.NewQuery[model.Entry](
		db, orm.ResolveTableName[model.Entry](orm.DeriveTableName("Entry")), entriesColumns, "id",
		scanEntry, entryColumnValuePairs, setEntryPK,
	)
	q.RegisterJoin("Blog", orm.JoinConfig{
		TargetTable: "blogs", TargetColumn: "id",
		SourceTable: "entries", SourceColumn: "blog_id",
	})
	q.RegisterPreloader("Blog", preloadEntryBlog)
	q.RegisterPreloader("Authors", preloadEntryAuthors)
	q.RegisterTimestamps(setEntryCreatedAt, setEntryUpdatedAt)
	return q
}

var entriesColumns = []string{
	"id", "blog_id", "headline", "body_text", "pub_date", "mod_date",
	"number_of_comments", "number_of_pingbacks", "rating",
}

func scanEntry(rows *sql.Rows) (model.Entry, error) {
	cols, _ := rows.Columns()
	var v model.Entry
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "blog_id":
			dest[i] = &v.BlogID
		case "headline":
			dest[i] = &v.Headline
		case "body_text":
			dest[i] = &v.BodyText
		case "pub_date":
			dest[i] = &v.PubDate
		case "mod_date":
			dest[i] = &v.ModDate
		case "number_of_comments":
			dest[i] = &v.NumberOfComments
		case "number_of_pingbacks":
			dest[i] = &v.NumberOfPingbacks
		case "rating":
			dest[i] = &v.Rating
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func entryColumnValuePairs(v *model.Entry, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "blog_id", "headline", "body_text", "pub_date", "mod_date", "number_of_comments", "number_of_pingbacks", "rating"},
			[]any{v.ID, v.BlogID, v.Headline, v.BodyText, v.PubDate, v.ModDate, v.NumberOfComments, v.NumberOfPingbacks, v.Rating}
	}
	return []string{"blog_id", "headline", "body_text", "pub_date", "mod_date", "number_of_comments", "number_of_pingbacks", "rating"},
		[]any{v.BlogID, v.Headline, v.BodyText, v.PubDate, v.ModDate, v.NumberOfComments, v.NumberOfPingbacks, v.Rating}
}

func setEntryPK(v *model.Entry, id int64) {
	v.ID = int(id)
}

func setEntryCreatedAt(v *model.Entry, now time.Time) {
	if v.ModDate.IsZero() {
		v.ModDate = now
	}
}

func setEntryUpdatedAt(v *model.Entry, now time.Time) {
	v.ModDate = now
}

func preloadEntryBlog(ctx context.Context, db orm.Querier, results []model.Entry) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].BlogID
	}
	related, err := Blogs(db).Scopes(scope.In("id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]*model.Blog)
	for i := range related {
		byPK[related[i].ID] = &related[i]
	}
	for i := range results {
		results[i].Blog = byPK[results[i].BlogID]
	}
	return nil
}

func preloadEntryAuthors(ctx context.Context, db orm.Querier, results []model.Entry) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	pairs, err := orm.QueryJoinTable[int, int](
		ctx, db, "entry_authors", "entry_id", "author_id", ids,
	)
	if err != nil {
		return err
	}
	targetIDs := orm.UniqueTargets(pairs)
	related, err := Authors(db).Scopes(scope.In("id", targetIDs)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]model.Author)
	for _, r := range related {
		byPK[r.ID] = r
	}
	grouped := orm.GroupBySource(pairs)
	for i := range results {
		tIDs := grouped[results[i].ID]
		items := make([]model.Author, 0, len(tIDs))
		for _, tid := range tIDs {
			if v, ok := byPK[tid]; ok {
				items = append(items, v)
			}
		}
		results[i].Authors = items
	}
	return nil
}

// Authors returns a new Query for the authors table.
func Authors(db orm.Querier) *orm.Query[model.Author] {
	return orm.NewQuery[model.Author](
		db, orm.ResolveTableName[model.Author](orm.DeriveTableName("Author")), authorsColumns, "id",
		scanAuthor, authorColumnValuePairs, setAuthorPK,
	)
}

var authorsColumns = []string{"id", "name", "email", "age"}

func scanAuthor(rows *sql.Rows) (model.Author, error) {
	cols, _ := rows.Columns()
	var v model.Author
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "name":
			dest[i] = &v.Name
		case "email":
			dest[i] = &v.Email
		case "age":
			dest[i] = &v.Age
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func authorColumnValuePairs(v *model.Author, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name", "email", "age"},
			[]any{v.ID, v.Name, v.Email, v.Age}
	}
	return []string{"name", "email", "age"},
		[]any{v.Name, v.Email, v.Age}
}

func setAuthorPK(v *model.Author, id int64) {
	v.ID = int(id)
}

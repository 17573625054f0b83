package query

import (
	"context"
	"database/sql"

	"modelbook/model"
	"modelbook/orm"
	"modelbook/scope"
)

// Publishers returns a new Query for the publishers table.
func Publishers(db orm.Querier) *orm.Query[model.Publisher] {
	q := orm.NewQuery[model.Publisher](
		db, orm.ResolveTableName[model.Publisher](orm.DeriveTableName("Publisher")), publishersColumns, "id",
		scanPublisher, publisherColumnValuePairs, setPublisherPK,
	)
	q.RegisterJoin("Books", orm.JoinConfig{
		TargetTable: "books", TargetColumn: "publisher_id",
		SourceTable: "publishers", SourceColumn: "id",
	})
	q.RegisterPreloader("Books", preloadPublisherBooks)
	return q
}

var publishersColumns = []string{"id", "name"}

func scanPublisher(rows *sql.Rows) (model.Publisher, error) {
	cols, _ := rows.Columns()
	var v model.Publisher
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "name":
			dest[i] = &v.Name
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func publisherColumnValuePairs(v *model.Publisher, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"},
			[]any{v.ID, v.Name}
	}
	return []string{"name"},
		[]any{v.Name}
}

func setPublisherPK(v *model.Publisher, id int64) {
	v.ID = int(id)
}

func preloadPublisherBooks(ctx context.Context, db orm.Querier, results []model.Publisher) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	related, err := Books(db).Scopes(scope.In("publisher_id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byFK := make(map[int][]model.Book)
	for _, r := range related {
		byFK[r.PublisherID] = append(byFK[r.PublisherID], r)
	}
	for i := range results {
		results[i].Books = byFK[results[i].ID]
	}
	return nil
}

// Books returns a new Query for the books table.
func Books(db orm.Querier) *orm.Query[model.Book] {
	q := orm.NewQuery[model.Book](
		db, orm.ResolveTableName[model.Book](orm.DeriveTableName("Book")), booksColumns, "id",
		scanBook, bookColumnValuePairs, setBookPK,
	)
	q.RegisterJoin("Publisher", orm.JoinConfig{
		TargetTable: "publishers", TargetColumn: "id",
		SourceTable: "books", SourceColumn: "publisher_id",
	})
	q.RegisterPreloader("Publisher", preloadBookPublisher)
	q.RegisterPreloader("Authors", preloadBookAuthors)
	return q
}

var booksColumns = []string{"id", "name", "pages", "price", "rating", "publisher_id", "pubdate"}

func scanBook(rows *sql.Rows) (model.Book, error) {
	cols, _ := rows.Columns()
	var v model.Book
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "name":
			dest[i] = &v.Name
		case "pages":
			dest[i] = &v.Pages
		case "price":
			dest[i] = &v.Price
		case "rating":
			dest[i] = &v.Rating
		case "publisher_id":
			dest[i] = &v.PublisherID
		case "pubdate":
			dest[i] = &v.PubDate
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func bookColumnValuePairs(v *model.Book, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name", "pages", "price", "rating", "publisher_id", "pubdate"},
			[]any{v.ID, v.Name, v.Pages, v.Price, v.Rating, v.PublisherID, v.PubDate}
	}
	return []string{"name", "pages", "price", "rating", "publisher_id", "pubdate"},
		[]any{v.Name, v.Pages, v.Price, v.Rating, v.PublisherID, v.PubDate}
}

func setBookPK(v *model.Book, id int64) {
	v.ID = int(id)
}

func preloadBookPublisher(ctx context.Context, db orm.Querier, results []model.Book) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].PublisherID
	}
	related, err := Publishers(db).Scopes(scope.In("id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]*model.Publisher)
	for i := range related {
		byPK[related[i].ID] = &related[i]
	}
	for i := range results {
		results[i].Publisher = byPK[results[i].PublisherID]
	}
	return nil
}

func preloadBookAuthors(ctx context.Context, db orm.Querier, results []model.Book) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	pairs, err := orm.QueryJoinTable[int, int](
		ctx, db, "book_authors", "book_id", "author_id", ids,
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

// Stores returns a new Query for the stores table.
func Stores(db orm.Querier) *orm.Query[model.Store] {
	q := orm.NewQuery[model.Store](
		db, orm.ResolveTableName[model.Store](orm.DeriveTableName("Store")), storesColumns, "id",
		scanStore, storeColumnValuePairs, setStorePK,
	)
	q.RegisterPreloader("Books", preloadStoreBooks)
	return q
}

var storesColumns = []string{"id", "name"}

func scanStore(rows *sql.Rows) (model.Store, error) {
	cols, _ := rows.Columns()
	var v model.Store
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "name":
			dest[i] = &v.Name
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func storeColumnValuePairs(v *model.Store, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"},
			[]any{v.ID, v.Name}
	}
	return []string{"name"},
		[]any{v.Name}
}

func setStorePK(v *model.Store, id int64) {
	v.ID = int(id)
}

func preloadStoreBooks(ctx context.Context, db orm.Querier, results []model.Store) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	pairs, err := orm.QueryJoinTable[int, int](
		ctx, db, "store_books", "store_id", "book_id", ids,
	)
	if err != nil {
		return err
	}
	targetIDs := orm.UniqueTargets(pairs)
	related, err := Books(db).Scopes(scope.In("id", targetIDs)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]model.Book)
	for _, r := range related {
		byPK[r.ID] = r
	}
	grouped := orm.GroupBySource(pairs)
	for i := range results {
		tIDs := grouped[results[i].ID]
		items := make([]model.Book, 0, len(tIDs))
		for _, tid := range tIDs {
			if v, ok := byPK[tid]; ok {
				items = append(items, v)
			}
		}
		results[i].Books = items
	}
	return nil
}

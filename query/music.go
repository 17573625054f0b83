package query

import (
	"context"
	"database/sql"

	"modelbook/model"
	"modelbook/orm"
	"modelbook/scope"
)

// Musicians returns a new Query for the musicians table.
func Musicians(db orm.Querier) *orm.Query[model.Musician] {
	q := orm.NewQuery[model.Musician](
		db, orm.ResolveTableName[model.Musician](orm.DeriveTableName("Musician")), musiciansColumns, "id",
		scanMusician, musicianColumnValuePairs, setMusicianPK,
	)
	q.RegisterJoin("Albums", orm.JoinConfig{
		TargetTable: "albums", TargetColumn: "artist_id",
		SourceTable: "musicians", SourceColumn: "id",
	})
	q.RegisterPreloader("Albums", preloadMusicianAlbums)
	return q
}

var musiciansColumns = []string{"id", "first_name", "last_name", "instrument"}

func scanMusician(rows *sql.Rows) (model.Musician, error) {
	cols, _ := rows.Columns()
	var v model.Musician
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "first_name":
			dest[i] = &v.FirstName
		case "last_name":
			dest[i] = &v.LastName
		case "instrument":
			dest[i] = &v.Instrument
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func musicianColumnValuePairs(v *model.Musician, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "first_name", "last_name", "instrument"},
			[]any{v.ID, v.FirstName, v.LastName, v.Instrument}
	}
	return []string{"first_name", "last_name", "instrument"},
		[]any{v.FirstName, v.LastName, v.Instrument}
}

func setMusicianPK(v *model.Musician, id int64) {
	v.ID = int(id)
}

func preloadMusicianAlbums(ctx context.Context, db orm.Querier, results []model.Musician) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	related, err := Albums(db).Scopes(scope.In("artist_id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byFK := make(map[int][]model.Album)
	for _, r := range related {
		byFK[r.ArtistID] = append(byFK[r.ArtistID], r)
	}
	for i := range results {
		results[i].Albums = byFK[results[i].ID]
	}
	return nil
}

// Albums returns a new Query for the albums table.
func Albums(db orm.Querier) *orm.Query[model.Album] {
	q := orm.NewQuery[model.Album](
		db, orm.ResolveTableName[model.Album](orm.DeriveTableName("Album")), albumsColumns, "id",
		scanAlbum, albumColumnValuePairs, setAlbumPK,
	)
	q.RegisterJoin("Artist", orm.JoinConfig{
		TargetTable: "musicians", TargetColumn: "id",
		SourceTable: "albums", SourceColumn: "artist_id",
	})
	q.RegisterPreloader("Artist", preloadAlbumArtist)
	return q
}

var albumsColumns = []string{"id", "artist_id", "name", "release_date", "num_stars"}

func scanAlbum(rows *sql.Rows) (model.Album, error) {
	cols, _ := rows.Columns()
	var v model.Album
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "artist_id":
			dest[i] = &v.ArtistID
		case "name":
			dest[i] = &v.Name
		case "release_date":
			dest[i] = &v.ReleaseDate
		case "num_stars":
			dest[i] = &v.NumStars
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func albumColumnValuePairs(v *model.Album, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "artist_id", "name", "release_date", "num_stars"},
			[]any{v.ID, v.ArtistID, v.Name, v.ReleaseDate, v.NumStars}
	}
	return []string{"artist_id", "name", "release_date", "num_stars"},
		[]any{v.ArtistID, v.Name, v.ReleaseDate, v.NumStars}
}

func setAlbumPK(v *model.Album, id int64) {
	v.ID = int(id)
}

func preloadAlbumArtist(ctx context.Context, db orm.Querier, results []model.Album) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ArtistID
	}
	related, err := Musicians(db).Scopes(scope.In("id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]*model.Musician)
	for i := range related {
		byPK[related[i].ID] = &related[i]
	}
	for i := range results {
		results[i].Artist = byPK[results[i].ArtistID]
	}
	return nil
}

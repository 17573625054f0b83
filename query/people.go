package query

import (
	"context"
	"database/sql"

	"modelbook/model"
	"modelbook/orm"
	"modelbook/scope"
)

// People returns a new Query for the people table.
func People(db orm.Querier) *orm.Query[model.Person] {
	q := orm.NewQuery[model.Person](
		db, orm.ResolveTableName[model.Person](orm.DeriveTableName("Person")), peopleColumns, "id",
		scanPerson, personColumnValuePairs, setPersonPK,
	)
	q.RegisterPreloader("Groups", preloadPersonGroups)
	return q
}

var peopleColumns = []string{"id", "name", "first_name", "last_name", "shirt_size", "birth_date"}

func scanPerson(rows *sql.Rows) (model.Person, error) {
	cols, _ := rows.Columns()
	var v model.Person
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "name":
			dest[i] = &v.Name
		case "first_name":
			dest[i] = &v.FirstName
		case "last_name":
			dest[i] = &v.LastName
		case "shirt_size":
			dest[i] = &v.ShirtSize
		case "birth_date":
			dest[i] = &v.BirthDate
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func personColumnValuePairs(v *model.Person, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name", "first_name", "last_name", "shirt_size", "birth_date"},
			[]any{v.ID, v.Name, v.FirstName, v.LastName, v.ShirtSize, v.BirthDate}
	}
	return []string{"name", "first_name", "last_name", "shirt_size", "birth_date"},
		[]any{v.Name, v.FirstName, v.LastName, v.ShirtSize, v.BirthDate}
}

func setPersonPK(v *model.Person, id int64) {
	v.ID = int(id)
}

func preloadPersonGroups(ctx context.Context, db orm.Querier, results []model.Person) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	pairs, err := orm.QueryJoinTable[int, int](
		ctx, db, "memberships", "person_id", "group_id", ids,
	)
	if err != nil {
		return err
	}
	targetIDs := orm.UniqueTargets(pairs)
	related, err := Groups(db).Scopes(scope.In("id", targetIDs)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]model.Group)
	for _, r := range related {
		byPK[r.ID] = r
	}
	grouped := orm.GroupBySource(pairs)
	for i := range results {
		tIDs := grouped[results[i].ID]
		items := make([]model.Group, 0, len(tIDs))
		for _, tid := range tIDs {
			if v, ok := byPK[tid]; ok {
				items = append(items, v)
			}
		}
		results[i].Groups = items
	}
	return nil
}

// Groups returns a new Query for the groups table.
func Groups(db orm.Querier) *orm.Query[model.Group] {
	q := orm.NewQuery[model.Group](
		db, orm.ResolveTableName[model.Group](orm.DeriveTableName("Group")), groupsColumns, "id",
		scanGroup, groupColumnValuePairs, setGroupPK,
	)
	q.RegisterPreloader("Members", preloadGroupMembers)
	return q
}

var groupsColumns = []string{"id", "name"}

func scanGroup(rows *sql.Rows) (model.Group, error) {
	cols, _ := rows.Columns()
	var v model.Group
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

func groupColumnValuePairs(v *model.Group, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"},
			[]any{v.ID, v.Name}
	}
	return []string{"name"},
		[]any{v.Name}
}

func setGroupPK(v *model.Group, id int64) {
	v.ID = int(id)
}

func preloadGroupMembers(ctx context.Context, db orm.Querier, results []model.Group) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	pairs, err := orm.QueryJoinTable[int, int](
		ctx, db, "memberships", "group_id", "person_id", ids,
	)
	if err != nil {
		return err
	}
	targetIDs := orm.UniqueTargets(pairs)
	related, err := People(db).Scopes(scope.In("id", targetIDs)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]model.Person)
	for _, r := range related {
		byPK[r.ID] = r
	}
	grouped := orm.GroupBySource(pairs)
	for i := range results {
		tIDs := grouped[results[i].ID]
		items := make([]model.Person, 0, len(tIDs))
		for _, tid := range tIDs {
			if v, ok := byPK[tid]; ok {
				items = append(items, v)
			}
		}
		results[i].Members = items
	}
	return nil
}

// Memberships returns a new Query for the memberships table.
func Memberships(db orm.Querier) *orm.Query[model.Membership] {
	q := orm.NewQuery[model.Membership](
		db, orm.ResolveTableName[model.Membership](orm.DeriveTableName("Membership")), membershipsColumns, "id",
		scanMembership, membershipColumnValuePairs, setMembershipPK,
	)
	q.RegisterJoin("Person", orm.JoinConfig{
		TargetTable: "people", TargetColumn: "id",
		SourceTable: "memberships", SourceColumn: "person_id",
	})
	q.RegisterPreloader("Person", preloadMembershipPerson)
	q.RegisterJoin("Group", orm.JoinConfig{
		TargetTable: "groups", TargetColumn: "id",
		SourceTable: "memberships", SourceColumn: "group_id",
	})
	q.RegisterPreloader("Group", preloadMembershipGroup)
	return q
}

var membershipsColumns = []string{"id", "person_id", "group_id", "date_joined", "invite_reason"}

func scanMembership(rows *sql.Rows) (model.Membership, error) {
	cols, _ := rows.Columns()
	var v model.Membership
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "person_id":
			dest[i] = &v.PersonID
		case "group_id":
			dest[i] = &v.GroupID
		case "date_joined":
			dest[i] = &v.DateJoined
		case "invite_reason":
			dest[i] = &v.InviteReason
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func membershipColumnValuePairs(v *model.Membership, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "person_id", "group_id", "date_joined", "invite_reason"},
			[]any{v.ID, v.PersonID, v.GroupID, v.DateJoined, v.InviteReason}
	}
	return []string{"person_id", "group_id", "date_joined", "invite_reason"},
		[]any{v.PersonID, v.GroupID, v.DateJoined, v.InviteReason}
}

func setMembershipPK(v *model.Membership, id int64) {
	v.ID = int(id)
}

func preloadMembershipPerson(ctx context.Context, db orm.Querier, results []model.Membership) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].PersonID
	}
	related, err := People(db).Scopes(scope.In("id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]*model.Person)
	for i := range related {
		byPK[related[i].ID] = &related[i]
	}
	for i := range results {
		results[i].Person = byPK[results[i].PersonID]
	}
	return nil
}

func preloadMembershipGroup(ctx context.Context, db orm.Querier, results []model.Membership) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].GroupID
	}
	related, err := Groups(db).Scopes(scope.In("id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]*model.Group)
	for i := range related {
		byPK[related[i].ID] = &related[i]
	}
	for i := range results {
		results[i].Group = byPK[results[i].GroupID]
	}
	return nil
}

package query

import (
	"context"
	"database/sql"

	"modelbook/model"
	"modelbook/orm"
	"modelbook/scope"
)

// Oxen returns a new Query for the oxen table. Oxen are read in horn-length
// order unless the query orders explicitly.
func Oxen(db orm.Querier) *orm.Query[model.Ox] {
	q := orm.NewQuery[model.Ox](
		db, orm.ResolveTableName[model.Ox](orm.DeriveTableName("Ox")), oxenColumns, "id",
		scanOx, oxColumnValuePairs, setOxPK,
	)
	q.RegisterDefaultOrder("horn_length")
	return q
}

var oxenColumns = []string{"id", "horn_length"}

func scanOx(rows *sql.Rows) (model.Ox, error) {
	cols, _ := rows.Columns()
	var v model.Ox
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "horn_length":
			dest[i] = &v.HornLength
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func oxColumnValuePairs(v *model.Ox, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "horn_length"},
			[]any{v.ID, v.HornLength}
	}
	return []string{"horn_length"},
		[]any{v.HornLength}
}

func setOxPK(v *model.Ox, id int64) {
	v.ID = int(id)
}

// Runners returns a new Query for the runners table.
func Runners(db orm.Querier) *orm.Query[model.Runner] {
	return orm.NewQuery[model.Runner](
		db, orm.ResolveTableName[model.Runner](orm.DeriveTableName("Runner")), runnersColumns, "id",
		scanRunner, runnerColumnValuePairs, setRunnerPK,
	)
}

var runnersColumns = []string{"id", "name", "medal"}

func scanRunner(rows *sql.Rows) (model.Runner, error) {
	cols, _ := rows.Columns()
	var v model.Runner
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "name":
			dest[i] = &v.Name
		case "medal":
			dest[i] = &v.Medal
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func runnerColumnValuePairs(v *model.Runner, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name", "medal"},
			[]any{v.ID, v.Name, v.Medal}
	}
	return []string{"name", "medal"},
		[]any{v.Name, v.Medal}
}

func setRunnerPK(v *model.Runner, id int64) {
	v.ID = int(id)
}

// Fruits returns a new Query for the fruits table. The name is the primary
// key and is supplied by the caller, so no PK setter is registered.
func Fruits(db orm.Querier) *orm.Query[model.Fruit] {
	return orm.NewQuery[model.Fruit](
		db, orm.ResolveTableName[model.Fruit](orm.DeriveTableName("Fruit")), fruitsColumns, "name",
		scanFruit, fruitColumnValuePairs, nil,
	)
}

var fruitsColumns = []string{"name"}

func scanFruit(rows *sql.Rows) (model.Fruit, error) {
	cols, _ := rows.Columns()
	var v model.Fruit
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "name":
			dest[i] = &v.Name
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func fruitColumnValuePairs(v *model.Fruit, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"name"},
			[]any{v.Name}
	}
	return nil, nil
}

// Manufacturers returns a new Query for the manufacturers table.
func Manufacturers(db orm.Querier) *orm.Query[model.Manufacturer] {
	q := orm.NewQuery[model.Manufacturer](
		db, orm.ResolveTableName[model.Manufacturer](orm.DeriveTableName("Manufacturer")), manufacturersColumns, "id",
		scanManufacturer, manufacturerColumnValuePairs, setManufacturerPK,
	)
	q.RegisterJoin("Cars", orm.JoinConfig{
		TargetTable: "cars", TargetColumn: "manufacturer_id",
		SourceTable: "manufacturers", SourceColumn: "id",
	})
	q.RegisterPreloader("Cars", preloadManufacturerCars)
	return q
}

var manufacturersColumns = []string{"id", "name"}

func scanManufacturer(rows *sql.Rows) (model.Manufacturer, error) {
	cols, _ := rows.Columns()
	var v model.Manufacturer
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

func manufacturerColumnValuePairs(v *model.Manufacturer, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"},
			[]any{v.ID, v.Name}
	}
	return []string{"name"},
		[]any{v.Name}
}

func setManufacturerPK(v *model.Manufacturer, id int64) {
	v.ID = int(id)
}

func preloadManufacturerCars(ctx context.Context, db orm.Querier, results []model.Manufacturer) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	related, err := Cars(db).Scopes(scope.In("manufacturer_id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byFK := make(map[int][]model.Car)
	for _, r := range related {
		byFK[r.ManufacturerID] = append(byFK[r.ManufacturerID], r)
	}
	for i := range results {
		results[i].Cars = byFK[results[i].ID]
	}
	return nil
}

// Cars returns a new Query for the cars table.
func Cars(db orm.Querier) *orm.Query[model.Car] {
	q := orm.NewQuery[model.Car](
		db, orm.ResolveTableName[model.Car](orm.DeriveTableName("Car")), carsColumns, "id",
		scanCar, carColumnValuePairs, setCarPK,
	)
	q.RegisterJoin("Manufacturer", orm.JoinConfig{
		TargetTable: "manufacturers", TargetColumn: "id",
		SourceTable: "cars", SourceColumn: "manufacturer_id",
	})
	q.RegisterPreloader("Manufacturer", preloadCarManufacturer)
	return q
}

var carsColumns = []string{"id", "manufacturer_id", "name"}

func scanCar(rows *sql.Rows) (model.Car, error) {
	cols, _ := rows.Columns()
	var v model.Car
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &v.ID
		case "manufacturer_id":
			dest[i] = &v.ManufacturerID
		case "name":
			dest[i] = &v.Name
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}

func carColumnValuePairs(v *model.Car, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "manufacturer_id", "name"},
			[]any{v.ID, v.ManufacturerID, v.Name}
	}
	return []string{"manufacturer_id", "name"},
		[]any{v.ManufacturerID, v.Name}
}

func setCarPK(v *model.Car, id int64) {
	v.ID = int(id)
}

func preloadCarManufacturer(ctx context.Context, db orm.Querier, results []model.Car) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ManufacturerID
	}
	related, err := Manufacturers(db).Scopes(scope.In("id", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]*model.Manufacturer)
	for i := range related {
		byPK[related[i].ID] = &related[i]
	}
	for i := range results {
		results[i].Manufacturer = byPK[results[i].ManufacturerID]
	}
	return nil
}

// Toppings returns a new Query for the toppings table.
func Toppings(db orm.Querier) *orm.Query[model.Topping] {
	return orm.NewQuery[model.Topping](
		db, orm.ResolveTableName[model.Topping](orm.DeriveTableName("Topping")), toppingsColumns, "id",
		scanTopping, toppingColumnValuePairs, setToppingPK,
	)
}

var toppingsColumns = []string{"id", "name"}

func scanTopping(rows *sql.Rows) (model.Topping, error) {
	cols, _ := rows.Columns()
	var v model.Topping
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

func toppingColumnValuePairs(v *model.Topping, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"},
			[]any{v.ID, v.Name}
	}
	return []string{"name"},
		[]any{v.Name}
}

func setToppingPK(v *model.Topping, id int64) {
	v.ID = int(id)
}

// Pizzas returns a new Query for the pizzas table.
func Pizzas(db orm.Querier) *orm.Query[model.Pizza] {
	q := orm.NewQuery[model.Pizza](
		db, orm.ResolveTableName[model.Pizza](orm.DeriveTableName("Pizza")), pizzasColumns, "id",
		scanPizza, pizzaColumnValuePairs, setPizzaPK,
	)
	q.RegisterPreloader("Toppings", preloadPizzaToppings)
	return q
}

var pizzasColumns = []string{"id", "name"}

func scanPizza(rows *sql.Rows) (model.Pizza, error) {
	cols, _ := rows.Columns()
	var v model.Pizza
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

func pizzaColumnValuePairs(v *model.Pizza, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"},
			[]any{v.ID, v.Name}
	}
	return []string{"name"},
		[]any{v.Name}
}

func setPizzaPK(v *model.Pizza, id int64) {
	v.ID = int(id)
}

func preloadPizzaToppings(ctx context.Context, db orm.Querier, results []model.Pizza) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	pairs, err := orm.QueryJoinTable[int, int](
		ctx, db, "pizza_toppings", "pizza_id", "topping_id", ids,
	)
	if err != nil {
		return err
	}
	targetIDs := orm.UniqueTargets(pairs)
	related, err := Toppings(db).Scopes(scope.In("id", targetIDs)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[int]model.Topping)
	for _, r := range related {
		byPK[r.ID] = r
	}
	grouped := orm.GroupBySource(pairs)
	for i := range results {
		tIDs := grouped[results[i].ID]
		items := make([]model.Topping, 0, len(tIDs))
		for _, tid := range tIDs {
			if v, ok := byPK[tid]; ok {
				items = append(items, v)
			}
		}
		results[i].Toppings = items
	}
	return nil
}

package model

// Ox demonstrates inherent ordering: its table ("oxen") is read in
// horn-length order unless a query orders explicitly.
type Ox struct {
	ID         int `db:"id,primaryKey"`
	HornLength int `db:"horn_length"`
}

// Medal is a choice enumeration where blank is a legal stored value
// (a runner who has not medalled).
type Medal string

const (
	MedalNone   Medal = ""
	MedalGold   Medal = "GOLD"
	MedalSilver Medal = "SILVER"
	MedalBronze Medal = "BRONZE"
)

// Valid reports whether m is blank or one of the defined medals.
func (m Medal) Valid() bool {
	switch m {
	case MedalNone, MedalGold, MedalSilver, MedalBronze:
		return true
	}
	return false
}

// Display returns the human-readable label; blank stays blank.
func (m Medal) Display() string {
	switch m {
	case MedalGold:
		return "Gold"
	case MedalSilver:
		return "Silver"
	case MedalBronze:
		return "Bronze"
	}
	return string(m)
}

type Runner struct {
	ID    int    `db:"id,primaryKey"`
	Name  string `db:"name"`
	Medal Medal  `db:"medal"`
}

// Fruit demonstrates natural primary keys. The name is the key, and keys
// are never rewritten: changing Name on a loaded Fruit and calling Create
// inserts a new row alongside the old one.
type Fruit struct {
	Name string `db:"name,primaryKey"`
}

type Manufacturer struct {
	ID   int    `db:"id,primaryKey"`
	Name string `db:"name"`

	Cars []Car `db:"-" rel:"has_many,foreign_key:manufacturer_id"`
}

// Car demonstrates the plain one-to-many: a manufacturer makes many cars,
// each car has exactly one manufacturer.
type Car struct {
	ID             int    `db:"id,primaryKey"`
	ManufacturerID int    `db:"manufacturer_id"`
	Name           string `db:"name"`

	Manufacturer *Manufacturer `db:"-" rel:"belongs_to,foreign_key:manufacturer_id"`
}

type Topping struct {
	ID   int    `db:"id,primaryKey"`
	Name string `db:"name"`
}

// Pizza demonstrates the plain many-to-many: a pizza has many toppings and
// a topping goes on many pizzas, with nothing stored on the link itself.
type Pizza struct {
	ID   int    `db:"id,primaryKey"`
	Name string `db:"name"`

	Toppings []Topping `db:"-" rel:"many_to_many,join_table:pizza_toppings,foreign_key:pizza_id,references:topping_id"`
}

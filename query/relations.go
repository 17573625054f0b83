package query

import "modelbook/orm"

// Relation managers for the join tables. These complement the preloaders:
// preloaders read related rows onto a loaded slice, managers write the link
// rows themselves (Add, Set, Remove, Clear).
//
// PersonGroups and GroupMembers manage the same memberships table from
// either side; the membership row's own columns (date_joined, invite_reason)
// are passed as orm.Through defaults on Add and Set.
var (
	PersonGroups = orm.ManyToMany[int, int]{
		Table: "memberships", SourceCol: "person_id", TargetCol: "group_id",
	}
	GroupMembers = orm.ManyToMany[int, int]{
		Table: "memberships", SourceCol: "group_id", TargetCol: "person_id",
	}
	EntryAuthors = orm.ManyToMany[int, int]{
		Table: "entry_authors", SourceCol: "entry_id", TargetCol: "author_id",
	}
	BookAuthors = orm.ManyToMany[int, int]{
		Table: "book_authors", SourceCol: "book_id", TargetCol: "author_id",
	}
	StoreBooks = orm.ManyToMany[int, int]{
		Table: "store_books", SourceCol: "store_id", TargetCol: "book_id",
	}
	PizzaToppings = orm.ManyToMany[int, int]{
		Table: "pizza_toppings", SourceCol: "pizza_id", TargetCol: "topping_id",
	}
)

package schema

// Tables lists every table in dependency order: referenced tables come
// before their referrers so Create can run the statements top to bottom.
var Tables = []Table{
	{
		Name: "questions",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "question_text", Kind: Varchar, Size: 200},
			{Name: "pub_date", Kind: DateTime},
		},
	},
	{
		Name: "choices",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "question_id", Kind: Int},
			{Name: "choice_text", Kind: Varchar, Size: 200},
			{Name: "votes", Kind: Int},
		},
		ForeignKeys: []ForeignKey{
			{Column: "question_id", RefTable: "questions", RefColumn: "id"},
		},
	},
	{
		Name: "people",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 128},
			{Name: "first_name", Kind: Varchar, Size: 50},
			{Name: "last_name", Kind: Varchar, Size: 50},
			{Name: "shirt_size", Kind: Varchar, Size: 1},
			{Name: "birth_date", Kind: Date, Null: true},
		},
	},
	{
		Name: "groups",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 128},
		},
	},
	{
		Name: "memberships",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "person_id", Kind: Int},
			{Name: "group_id", Kind: Int},
			{Name: "date_joined", Kind: Date},
			{Name: "invite_reason", Kind: Varchar, Size: 64},
		},
		ForeignKeys: []ForeignKey{
			{Column: "person_id", RefTable: "people", RefColumn: "id"},
			{Column: "group_id", RefTable: "groups", RefColumn: "id"},
		},
	},
	{
		Name: "blogs",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 100},
			{Name: "tagline", Kind: Text},
		},
	},
	{
		Name: "authors",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 200},
			{Name: "email", Kind: Varchar, Size: 254},
			{Name: "age", Kind: Int},
		},
	},
	{
		Name: "entries",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "blog_id", Kind: Int},
			{Name: "headline", Kind: Varchar, Size: 255},
			{Name: "body_text", Kind: Text},
			{Name: "pub_date", Kind: Date},
			{Name: "mod_date", Kind: DateTime},
			{Name: "number_of_comments", Kind: Int},
			{Name: "number_of_pingbacks", Kind: Int},
			{Name: "rating", Kind: Int},
		},
		ForeignKeys: []ForeignKey{
			{Column: "blog_id", RefTable: "blogs", RefColumn: "id"},
		},
	},
	{
		Name: "entry_authors",
		Columns: []Column{
			{Name: "entry_id", Kind: Int},
			{Name: "author_id", Kind: Int},
		},
		ForeignKeys: []ForeignKey{
			{Column: "entry_id", RefTable: "entries", RefColumn: "id"},
			{Column: "author_id", RefTable: "authors", RefColumn: "id"},
		},
		Uniques: [][]string{{"entry_id", "author_id"}},
	},
	{
		Name: "publishers",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 300},
		},
	},
	{
		Name: "books",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 300},
			{Name: "pages", Kind: Int},
			{Name: "price", Kind: Decimal, Precision: 10, Scale: 2},
			{Name: "rating", Kind: Float},
			{Name: "publisher_id", Kind: Int},
			{Name: "pubdate", Kind: Date},
		},
		ForeignKeys: []ForeignKey{
			{Column: "publisher_id", RefTable: "publishers", RefColumn: "id"},
		},
	},
	{
		Name: "book_authors",
		Columns: []Column{
			{Name: "book_id", Kind: Int},
			{Name: "author_id", Kind: Int},
		},
		ForeignKeys: []ForeignKey{
			{Column: "book_id", RefTable: "books", RefColumn: "id"},
			{Column: "author_id", RefTable: "authors", RefColumn: "id"},
		},
		Uniques: [][]string{{"book_id", "author_id"}},
	},
	{
		Name: "stores",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 300},
		},
	},
	{
		Name: "store_books",
		Columns: []Column{
			{Name: "store_id", Kind: Int},
			{Name: "book_id", Kind: Int},
		},
		ForeignKeys: []ForeignKey{
			{Column: "store_id", RefTable: "stores", RefColumn: "id"},
			{Column: "book_id", RefTable: "books", RefColumn: "id"},
		},
		Uniques: [][]string{{"store_id", "book_id"}},
	},
	{
		Name: "musicians",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "first_name", Kind: Varchar, Size: 50},
			{Name: "last_name", Kind: Varchar, Size: 50},
			{Name: "instrument", Kind: Varchar, Size: 100},
		},
	},
	{
		Name: "albums",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "artist_id", Kind: Int},
			{Name: "name", Kind: Varchar, Size: 100},
			{Name: "release_date", Kind: Date},
			{Name: "num_stars", Kind: Int},
		},
		ForeignKeys: []ForeignKey{
			{Column: "artist_id", RefTable: "musicians", RefColumn: "id"},
		},
	},
	{
		Name: "oxen",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "horn_length", Kind: Int},
		},
	},
	{
		Name: "runners",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 60},
			{Name: "medal", Kind: Varchar, Size: 10},
		},
	},
	{
		Name: "fruits",
		Columns: []Column{
			{Name: "name", Kind: Varchar, Size: 100, PrimaryKey: true},
		},
	},
	{
		Name: "manufacturers",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 100},
		},
	},
	{
		Name: "cars",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "manufacturer_id", Kind: Int},
			{Name: "name", Kind: Varchar, Size: 100},
		},
		ForeignKeys: []ForeignKey{
			{Column: "manufacturer_id", RefTable: "manufacturers", RefColumn: "id"},
		},
	},
	{
		Name: "toppings",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 30},
		},
	},
	{
		Name: "pizzas",
		Columns: []Column{
			{Name: "id", Kind: Serial},
			{Name: "name", Kind: Varchar, Size: 50},
		},
	},
	{
		Name: "pizza_toppings",
		Columns: []Column{
			{Name: "pizza_id", Kind: Int},
			{Name: "topping_id", Kind: Int},
		},
		ForeignKeys: []ForeignKey{
			{Column: "pizza_id", RefTable: "pizzas", RefColumn: "id"},
			{Column: "topping_id", RefTable: "toppings", RefColumn: "id"},
		},
		Uniques: [][]string{{"pizza_id", "topping_id"}},
	},
}

package apiclient

// User is a single user record as returned by the listing API.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Image     string `json:"image"`
	Age       int    `json:"age"`
	Company   struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	} `json:"company"`
}

// Product is a single product record as returned by the listing API.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

// Category is immutable reference data for category filtering.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// UserPage is one page of the user collection.
type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// ProductPage is one page of the product collection.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// AuthSession is a successful authentication result: the bearer token and
// the principal attribute record with credentials stripped out.
type AuthSession struct {
	Token     string
	Principal map[string]any
}

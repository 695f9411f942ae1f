package catalog

type Author struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BirthYear *int64  `json:"birth_year,omitempty"`
	Country   *string `json:"country,omitempty"`
}

type Genre struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Book is a raw books row. AuthorID and GenreID may point at rows that no longer exist.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	AuthorID        *int64  `json:"author_id,omitempty"`
	GenreID         *int64  `json:"genre_id,omitempty"`
	PublicationYear *int64  `json:"publication_year,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	Pages           *int64  `json:"pages,omitempty"`
}

// BookListing is a book joined with its author and genre names.
type BookListing struct {
	Book
	AuthorName string `json:"author_name"`
	GenreName  string `json:"genre_name"`
}

// BookDetail extends BookListing with the fields shown on the detail page.
type BookDetail struct {
	BookListing
	AuthorCountry    *string `json:"author_country,omitempty"`
	GenreDescription *string `json:"genre_description,omitempty"`
}

// BookInput carries the six mutable book fields. Nil means NULL.
type BookInput struct {
	Title           string
	AuthorID        *int64
	GenreID         *int64
	PublicationYear *int64
	ISBN            *string
	Pages           *int64
}

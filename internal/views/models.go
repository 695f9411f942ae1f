package views

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/5w1tchy/bookshelf/internal/store/catalog"
)

type ListData struct {
	Books       []catalog.BookListing
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
}

type DetailData struct {
	Book catalog.BookDetail
}

// Option is one entry of an author or genre select box.
type Option struct {
	ID       int64
	Label    string
	Selected bool
}

type FormData struct {
	// Book is nil on the add form.
	Book    *catalog.Book
	Authors []Option
	Genres  []Option
}

type LoginData struct {
	Error string
}

// AuthorOptions marks selected; an id with no matching author is kept as an
// extra selected entry so saving the form does not clear the reference.
func AuthorOptions(authors []catalog.Author, selected *int64) []Option {
	opts := lo.Map(authors, func(a catalog.Author, _ int) Option {
		return Option{ID: a.ID, Label: a.Name, Selected: selected != nil && *selected == a.ID}
	})
	return withDangling(opts, selected, "Unknown author")
}

func GenreOptions(genres []catalog.Genre, selected *int64) []Option {
	opts := lo.Map(genres, func(g catalog.Genre, _ int) Option {
		return Option{ID: g.ID, Label: g.Name, Selected: selected != nil && *selected == g.ID}
	})
	return withDangling(opts, selected, "Unknown genre")
}

func withDangling(opts []Option, selected *int64, label string) []Option {
	if selected == nil || lo.ContainsBy(opts, func(o Option) bool { return o.Selected }) {
		return opts
	}
	return append(opts, Option{ID: *selected, Label: fmt.Sprintf("%s #%d", label, *selected), Selected: true})
}

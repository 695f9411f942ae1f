package views_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/bookshelf/internal/store/catalog"
	"github.com/5w1tchy/bookshelf/internal/views"
)

func ptr[T any](v T) *T { return &v }

func load(t *testing.T) *views.Templates {
	t.Helper()
	tmpl, err := views.Load()
	require.NoError(t, err)
	return tmpl
}

func render(t *testing.T, name string, p views.Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, load(t).Render(&buf, name, p))
	return buf.String()
}

func TestEveryPageRenders(t *testing.T) {
	data := map[string]any{
		views.Home:    nil,
		views.About:   nil,
		views.Contact: nil,
		views.Login:   views.LoginData{},
		views.List:    views.ListData{CurrentPage: 1, TotalPages: 1},
		views.Detail:  views.DetailData{Book: catalog.BookDetail{BookListing: catalog.BookListing{Book: catalog.Book{ID: 1, Title: "Emma"}}}},
		views.Edit:    views.FormData{Book: &catalog.Book{ID: 1, Title: "Emma"}},
		views.Add:     views.FormData{},
	}
	for name, d := range data {
		out := render(t, name, views.Page{Title: "T-" + name, Active: name, Data: d})
		assert.Contains(t, out, "<title>T-"+name+"</title>", name)
		assert.Contains(t, out, "</html>", name)
	}
}

func TestUnknownView(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, load(t).Render(&buf, "nope", views.Page{}))
	assert.Zero(t, buf.Len())
}

func TestLayoutReflectsSession(t *testing.T) {
	anon := render(t, views.Home, views.Page{Title: "Home"})
	assert.Contains(t, anon, `href="/login"`)
	assert.NotContains(t, anon, `href="/logout"`)
	assert.NotContains(t, anon, `href="/add"`)

	admin := render(t, views.Home, views.Page{Title: "Home", LoggedIn: true, Username: "admin"})
	assert.Contains(t, admin, `href="/logout"`)
	assert.Contains(t, admin, `href="/add"`)
}

func TestListPagination(t *testing.T) {
	out := render(t, views.List, views.Page{Data: views.ListData{
		Books: []catalog.BookListing{{
			Book:       catalog.Book{ID: 4, Title: "Norwegian Wood", PublicationYear: ptr(int64(1987))},
			AuthorName: "Haruki Murakami",
			GenreName:  "Romance",
		}},
		CurrentPage: 2,
		TotalPages:  4,
		HasPrev:     true,
		HasNext:     true,
	}})

	assert.Contains(t, out, `href="/book/4"`)
	assert.Contains(t, out, "Haruki Murakami")
	assert.Contains(t, out, "1987")
	assert.Contains(t, out, `href="/list?page=1"`)
	assert.Contains(t, out, `href="/list?page=3"`)
	assert.Contains(t, out, "Page 2 of 4")
}

func TestDetailEscapesAndHidesControls(t *testing.T) {
	book := catalog.BookDetail{BookListing: catalog.BookListing{
		Book:       catalog.Book{ID: 7, Title: `<script>alert(1)</script>`},
		AuthorName: "Anon",
		GenreName:  "Mystery",
	}}

	anon := render(t, views.Detail, views.Page{Data: views.DetailData{Book: book}})
	assert.NotContains(t, anon, "<script>alert(1)</script>")
	assert.Contains(t, anon, "&lt;script&gt;")
	assert.NotContains(t, anon, "/book/7/delete")

	admin := render(t, views.Detail, views.Page{LoggedIn: true, Data: views.DetailData{Book: book}})
	assert.Contains(t, admin, `action="/book/7/delete"`)
	assert.Contains(t, admin, `href="/book/7/edit"`)
}

func TestEditFormPreselects(t *testing.T) {
	authors := []catalog.Author{{ID: 1, Name: "Jane Austen"}, {ID: 2, Name: "George Orwell"}}
	out := render(t, views.Edit, views.Page{Data: views.FormData{
		Book:    &catalog.Book{ID: 3, Title: "1984", AuthorID: ptr(int64(2)), Pages: ptr(int64(328))},
		Authors: views.AuthorOptions(authors, ptr(int64(2))),
	}})

	assert.Contains(t, out, `<option value="2" selected>George Orwell</option>`)
	assert.Contains(t, out, `<option value="1" >Jane Austen</option>`)
	assert.Contains(t, out, `value="328"`)
}

func TestLoginError(t *testing.T) {
	out := render(t, views.Login, views.Page{Data: views.LoginData{Error: "Invalid username or password"}})
	assert.Contains(t, out, "Invalid username or password")
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "É", views.Initials("émile"))
	assert.Equal(t, "1", views.Initials("1984"))
	assert.Equal(t, "", views.Initials(""))
}

func TestOptions(t *testing.T) {
	genres := []catalog.Genre{{ID: 5, Name: "Fantasy"}, {ID: 6, Name: "Classic"}}
	opts := views.GenreOptions(genres, nil)
	require.Len(t, opts, 2)
	assert.Equal(t, views.Option{ID: 5, Label: "Fantasy"}, opts[0])
}

func TestOptionsKeepDanglingReference(t *testing.T) {
	authors := []catalog.Author{{ID: 1, Name: "Jane Austen"}}
	opts := views.AuthorOptions(authors, ptr(int64(42)))
	require.Len(t, opts, 2)
	assert.False(t, opts[0].Selected)
	assert.Equal(t, views.Option{ID: 42, Label: "Unknown author #42", Selected: true}, opts[1])

	genres := []catalog.Genre{{ID: 5, Name: "Fantasy"}}
	assert.Len(t, views.GenreOptions(genres, ptr(int64(5))), 1)
	assert.Len(t, views.GenreOptions(genres, nil), 1)

	out := render(t, views.Edit, views.Page{Data: views.FormData{
		Book:    &catalog.Book{ID: 3, Title: "Orphan", AuthorID: ptr(int64(42)), GenreID: ptr(int64(77))},
		Authors: opts,
		Genres:  views.GenreOptions(genres, ptr(int64(77))),
	}})
	assert.Contains(t, out, `<option value="42" selected>Unknown author #42</option>`)
	assert.Contains(t, out, `<option value="77" selected>Unknown genre #77</option>`)
}

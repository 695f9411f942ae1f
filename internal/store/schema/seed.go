package schema

type seedAuthor struct {
	name      string
	birthYear int64
	country   string
}

type seedGenre struct {
	name        string
	description string
}

// seedBook refers to authors and genres by their 1-based position in the seed lists.
type seedBook struct {
	title  string
	author int
	genre  int
	year   int64
	isbn   string
	pages  int64
}

var seedAuthors = []seedAuthor{
	{"Gabriel García Márquez", 1927, "Colombia"},
	{"Jane Austen", 1775, "England"},
	{"George Orwell", 1903, "England"},
	{"Haruki Murakami", 1949, "Japan"},
	{"Chimamanda Ngozi Adichie", 1977, "Nigeria"},
	{"Paulo Coelho", 1947, "Brazil"},
}

var seedGenres = []seedGenre{
	{"Fiction", "Literary fiction and novels"},
	{"Science Fiction", "Speculative and futuristic stories"},
	{"Mystery", "Detective and crime stories"},
	{"Romance", "Love and relationship stories"},
	{"Fantasy", "Magical and imaginary worlds"},
	{"Classic", "Timeless literary works"},
}

var seedBooks = []seedBook{
	{"One Hundred Years of Solitude", 1, 1, 1967, "978-0060883287", 417},
	{"Pride and Prejudice", 2, 4, 1813, "978-0141439518", 432},
	{"1984", 3, 2, 1949, "978-0451524935", 328},
	{"Norwegian Wood", 4, 4, 1987, "978-0375704024", 296},
	{"Half of a Yellow Sun", 5, 1, 2006, "978-1400095209", 433},
	{"The Alchemist", 6, 1, 1988, "978-0062315007", 208},
	{"Love in the Time of Cholera", 1, 4, 1985, "978-0307389732", 348},
	{"Animal Farm", 3, 6, 1945, "978-0451526342", 141},
	{"Kafka on the Shore", 4, 5, 2002, "978-1400079278", 505},
	{"Americanah", 5, 1, 2013, "978-0307455925", 477},
}

package catalog

import "strconv"

// Movie is a single playable catalog entry.
type Movie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Thumb string `json:"thumb"`
	Src   string `json:"src"`
	Type  string `json:"type,omitempty"`
}

// Translations maps a language code to its key/text table.
type Translations map[string]map[string]string

// Catalog is the ordered category to movies mapping of one loaded document.
// Category order is the first-seen key order of the source JSON.
type Catalog struct {
	order  []string
	videos map[string][]Movie
	byID   map[string]Movie
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{videos: make(map[string][]Movie)}
}

// Set stores movies under category, appending the category to the ordering
// the first time it is seen. Setting a category drops the id index; call
// AssignIDs afterwards.
func (c *Catalog) Set(category string, movies []Movie) {
	if c.videos == nil {
		c.videos = make(map[string][]Movie)
	}
	if _, ok := c.videos[category]; !ok {
		c.order = append(c.order, category)
	}
	dup := make([]Movie, len(movies))
	copy(dup, movies)
	c.videos[category] = dup
	c.byID = nil
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	if c == nil || len(c.order) == 0 {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// HasCategory reports whether name is a catalog key. Empty categories count.
func (c *Catalog) HasCategory(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.videos[name]
	return ok
}

// Movies returns a copy of the movies in category.
func (c *Catalog) Movies(category string) ([]Movie, bool) {
	if c == nil {
		return nil, false
	}
	movies, ok := c.videos[category]
	if !ok {
		return nil, false
	}
	return cloneMovies(movies), true
}

// Len returns the total number of movies across all categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, movies := range c.videos {
		total += len(movies)
	}
	return total
}

// FindByID returns the movie with the given id. Only ids produced by the most
// recent AssignIDs call on this catalog resolve.
func (c *Catalog) FindByID(id string) (Movie, bool) {
	if c == nil || c.byID == nil {
		return Movie{}, false
	}
	m, ok := c.byID[id]
	return m, ok
}

// Trending concatenates every category in catalog order and returns the last
// n entries, or all of them when the catalog holds fewer than n.
func (c *Catalog) Trending(n int) []Movie {
	if c == nil || n <= 0 {
		return nil
	}
	var all []Movie
	for _, category := range c.order {
		all = append(all, c.videos[category]...)
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return cloneMovies(all)
}

// AssignIDs gives every movie the id "<category>-<index>", index being its
// zero-based position within the category, and rebuilds the lookup index.
func AssignIDs(c *Catalog) {
	if c == nil {
		return
	}
	c.byID = make(map[string]Movie, c.Len())
	for _, category := range c.order {
		movies := c.videos[category]
		for i := range movies {
			movies[i].ID = MovieID(category, i)
			c.byID[movies[i].ID] = movies[i]
		}
	}
}

// MovieID formats the positional identity of a movie.
func MovieID(category string, index int) string {
	return category + "-" + strconv.Itoa(index)
}

func cloneMovies(movies []Movie) []Movie {
	if len(movies) == 0 {
		return nil
	}
	dup := make([]Movie, len(movies))
	copy(dup, movies)
	return dup
}

package model

// Catalog is the in-memory result of parsing a discography source.
//
// Album names are stored exactly as authored. Iteration order is the order
// in which each name was first declared.
type Catalog struct {
	albums []*Album
	index  map[string]int
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]int),
	}
}

// DeclareAlbum creates an album entry with an empty track list and returns it.
//
// If an album with the same name already exists, it is replaced by a fresh
// empty album that keeps the original position. Tracks declared under the
// earlier header are no longer reachable through the Catalog.
func (c *Catalog) DeclareAlbum(name string) *Album {
	album := &Album{Name: name}
	if i, ok := c.index[name]; ok {
		c.albums[i] = album
		return album
	}
	c.index[name] = len(c.albums)
	c.albums = append(c.albums, album)
	return album
}

// Albums returns the albums in catalog order.
func (c *Catalog) Albums() []*Album {
	albums := make([]*Album, len(c.albums))
	copy(albums, c.albums)
	return albums
}

// Album returns the album with exactly the given name.
func (c *Catalog) Album(name string) (*Album, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.albums[i], true
}

// Names returns the album names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.albums))
	for i, album := range c.albums {
		names[i] = album.Name
	}
	return names
}

// Len returns the number of albums.
func (c *Catalog) Len() int {
	return len(c.albums)
}

// TrackCount returns the number of tracks across all albums.
func (c *Catalog) TrackCount() int {
	n := 0
	for _, album := range c.albums {
		n += len(album.Tracks)
	}
	return n
}

// Album is a named group of tracks.
type Album struct {
	// Name is the album name as written after the header marker.
	Name string

	// Tracks contains the album's tracks in source order.
	Tracks []*Track
}

// AddTrack appends a track to the album and returns its index.
func (a *Album) AddTrack(t *Track) int {
	a.Tracks = append(a.Tracks, t)
	return len(a.Tracks) - 1
}

// Match is a single search hit: a track title and the album that owns it.
type Match struct {
	Title string
	Album string
}

package catalog

import "fmt"

// DefaultRecords is the sample catalog written into a fresh config.yaml.
var DefaultRecords = []MediaRecord{
	{Kind: "audiobook", Title: "An Audiobook"},
	{Kind: "movie", Title: "Good Movie", Director: "Good Director"},
	{Kind: "book", Title: "Bad Book", Author: "Bad Author"},
	{Kind: "podcast", EpisodeNumber: 10},
	{Kind: "placeholder"},
}

// Seed builds a catalog holding records in order. It fails on the first
// record that does not describe a valid media item; the error names the
// record's position.
func Seed(records []MediaRecord) (*Catalog, error) {
	c := New()
	for i, rec := range records {
		m, err := rec.Media()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		c.Add(m)
	}
	return c, nil
}

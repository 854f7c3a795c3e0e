package catalog

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// MediaRecord is the flat, kind-discriminated form of a media item used in
// config.yaml and in JSON output. Only the fields of Kind are meaningful.
// EpisodeNumber is held as int64; Media rejects values outside uint32.
type MediaRecord struct {
	Kind          string `json:"kind" yaml:"kind" mapstructure:"kind"`
	Title         string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Author        string `json:"author,omitempty" yaml:"author,omitempty" mapstructure:"author"`
	Director      string `json:"director,omitempty" yaml:"director,omitempty" mapstructure:"director"`
	EpisodeNumber int64  `json:"episode_number,omitempty" yaml:"episode_number,omitempty" mapstructure:"episode_number"`
}

// recorder flattens a media value into rec.
type recorder struct {
	rec MediaRecord
}

func (r *recorder) VisitBook(b types.Book) {
	r.rec = MediaRecord{Kind: types.KindBook.String(), Title: b.Title, Author: b.Author}
}

func (r *recorder) VisitMovie(m types.Movie) {
	r.rec = MediaRecord{Kind: types.KindMovie.String(), Title: m.Title, Director: m.Director}
}

func (r *recorder) VisitAudiobook(a types.Audiobook) {
	r.rec = MediaRecord{Kind: types.KindAudiobook.String(), Title: a.Title}
}

func (r *recorder) VisitPodcast(p types.Podcast) {
	r.rec = MediaRecord{Kind: types.KindPodcast.String(), EpisodeNumber: int64(p.EpisodeNumber)}
}

func (r *recorder) VisitPlaceholder(types.Placeholder) {
	r.rec = MediaRecord{Kind: types.KindPlaceholder.String()}
}

// RecordOf returns the record form of m.
func RecordOf(m types.Media) MediaRecord {
	var r recorder
	m.Accept(&r)
	return r.rec
}

// Media converts the record back into its variant.
// Returns ErrUnknownKind or ErrInvalidMedia from package types on failure.
func (r MediaRecord) Media() (types.Media, error) {
	kind, err := types.ParseKind(r.Kind)
	if err != nil {
		return nil, err
	}
	if r.EpisodeNumber < 0 || r.EpisodeNumber > math.MaxUint32 {
		return nil, fmt.Errorf("kind %s: %w: episode_number %d out of range [0, %d]",
			kind, types.ErrInvalidMedia, r.EpisodeNumber, uint32(math.MaxUint32))
	}
	m, err := types.NewMedia(kind, types.MediaFields{
		Title:         r.Title,
		Author:        r.Author,
		Director:      r.Director,
		EpisodeNumber: uint32(r.EpisodeNumber),
	})
	if err != nil {
		return nil, fmt.Errorf("kind %s: %w", kind, err)
	}
	return m, nil
}

// EntryRecord is an entry as printed by the CLI in JSON mode.
type EntryRecord struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Description string `json:"description"`
	MediaRecord
}

// RecordOfEntry returns the JSON output form of e at index.
func RecordOfEntry(index int, e Entry) EntryRecord {
	return EntryRecord{
		Index:       index,
		ID:          e.ID,
		Description: e.Media.Describe(),
		MediaRecord: RecordOf(e.Media),
	}
}

// FallbackRecord is printed in place of an EntryRecord when a lookup missed
// and a fallback item was substituted. It carries no index or ID because no
// entry was found.
type FallbackRecord struct {
	Fallback       bool   `json:"fallback"`
	RequestedIndex int    `json:"requested_index"`
	Description    string `json:"description"`
	MediaRecord
}

// RecordOfFallback returns the JSON output form of m substituted for the
// missing entry at index.
func RecordOfFallback(index int, m types.Media) FallbackRecord {
	return FallbackRecord{
		Fallback:       true,
		RequestedIndex: index,
		Description:    m.Describe(),
		MediaRecord:    RecordOf(m),
	}
}

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind names a Media variant.
type Kind string

// Media kinds. The set is closed; see MediaVisitor.
const (
	KindBook        Kind = "book"
	KindMovie       Kind = "movie"
	KindAudiobook   Kind = "audiobook"
	KindPodcast     Kind = "podcast"
	KindPlaceholder Kind = "placeholder"
)

// Kinds lists every media kind in declaration order.
var Kinds = []Kind{
	KindBook,
	KindMovie,
	KindAudiobook,
	KindPodcast,
	KindPlaceholder,
}

// validKinds is the set of recognized kind names.
var validKinds = map[Kind]bool{
	KindBook:        true,
	KindMovie:       true,
	KindAudiobook:   true,
	KindPodcast:     true,
	KindPlaceholder: true,
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Media errors.
var (
	ErrUnknownKind  = errors.New("unknown media kind")
	ErrInvalidMedia = errors.New("invalid media fields")
)

// Media is a closed tagged union over Book, Movie, Audiobook, Podcast and
// Placeholder. The unexported marker keeps other packages from adding
// variants; a new variant must also add a MediaVisitor method, which breaks
// every visitor until it handles the new case.
type Media interface {
	// Kind reports which variant is active.
	Kind() Kind

	// Describe returns the variant's one-line description.
	Describe() string

	// Accept calls the visitor method matching the variant.
	Accept(v MediaVisitor)

	isMedia()
}

// MediaVisitor has one method per Media variant. Implementations are the
// exhaustive case analyses over Media.
type MediaVisitor interface {
	VisitBook(b Book)
	VisitMovie(m Movie)
	VisitAudiobook(a Audiobook)
	VisitPodcast(p Podcast)
	VisitPlaceholder(p Placeholder)
}

// Book is a printed book.
type Book struct {
	Title  string
	Author string
}

// Movie is a film.
type Movie struct {
	Title    string
	Director string
}

// Audiobook is a narrated book.
type Audiobook struct {
	Title string
}

// Podcast is a single podcast episode.
type Podcast struct {
	EpisodeNumber uint32
}

// Placeholder stands in for a missing item.
type Placeholder struct{}

func (Book) Kind() Kind        { return KindBook }
func (Movie) Kind() Kind       { return KindMovie }
func (Audiobook) Kind() Kind   { return KindAudiobook }
func (Podcast) Kind() Kind     { return KindPodcast }
func (Placeholder) Kind() Kind { return KindPlaceholder }

func (b Book) Accept(v MediaVisitor)        { v.VisitBook(b) }
func (m Movie) Accept(v MediaVisitor)       { v.VisitMovie(m) }
func (a Audiobook) Accept(v MediaVisitor)   { v.VisitAudiobook(a) }
func (p Podcast) Accept(v MediaVisitor)     { v.VisitPodcast(p) }
func (p Placeholder) Accept(v MediaVisitor) { v.VisitPlaceholder(p) }

func (b Book) Describe() string        { return Describe(b) }
func (m Movie) Describe() string       { return Describe(m) }
func (a Audiobook) Describe() string   { return Describe(a) }
func (p Podcast) Describe() string     { return Describe(p) }
func (p Placeholder) Describe() string { return Describe(p) }

func (Book) isMedia()        {}
func (Movie) isMedia()       {}
func (Audiobook) isMedia()   {}
func (Podcast) isMedia()     {}
func (Placeholder) isMedia() {}

// describer renders a Media value into out.
type describer struct {
	out string
}

func (d *describer) VisitBook(b Book) {
	d.out = fmt.Sprintf("Book: %s %s", b.Title, b.Author)
}

func (d *describer) VisitMovie(m Movie) {
	d.out = fmt.Sprintf("Movie: %s %s", m.Title, m.Director)
}

func (d *describer) VisitAudiobook(a Audiobook) {
	d.out = fmt.Sprintf("Audiobook: %s", a.Title)
}

func (d *describer) VisitPodcast(p Podcast) {
	d.out = "Podcast: " + strconv.FormatUint(uint64(p.EpisodeNumber), 10)
}

func (d *describer) VisitPlaceholder(Placeholder) {
	d.out = "Placeholder"
}

// Describe returns the description of m:
//
//	Book        "Book: {title} {author}"
//	Movie       "Movie: {title} {director}"
//	Audiobook   "Audiobook: {title}"
//	Podcast     "Podcast: {episode_number}"
//	Placeholder "Placeholder"
func Describe(m Media) string {
	var d describer
	m.Accept(&d)
	return d.out
}

// ParseKind returns the Kind named by s.
// Returns ErrUnknownKind if s is not a recognized kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !validKinds[k] {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// MediaFields is the union of every variant's fields. NewMedia reads only the
// fields the requested kind carries.
type MediaFields struct {
	Title         string
	Author        string
	Director      string
	EpisodeNumber uint32
}

// NewMedia builds the variant for kind from fields.
// Returns ErrUnknownKind for an unrecognized kind and ErrInvalidMedia when a
// field the kind requires is empty.
func NewMedia(kind Kind, f MediaFields) (Media, error) {
	switch kind {
	case KindBook:
		if f.Title == "" || f.Author == "" {
			return nil, fmt.Errorf("%w: book requires title and author", ErrInvalidMedia)
		}
		return Book{Title: f.Title, Author: f.Author}, nil
	case KindMovie:
		if f.Title == "" || f.Director == "" {
			return nil, fmt.Errorf("%w: movie requires title and director", ErrInvalidMedia)
		}
		return Movie{Title: f.Title, Director: f.Director}, nil
	case KindAudiobook:
		if f.Title == "" {
			return nil, fmt.Errorf("%w: audiobook requires title", ErrInvalidMedia)
		}
		return Audiobook{Title: f.Title}, nil
	case KindPodcast:
		return Podcast{EpisodeNumber: f.EpisodeNumber}, nil
	case KindPlaceholder:
		return Placeholder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

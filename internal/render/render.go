package render

import (
	"time"

	"github.com/goliatone/go-sitenav/content"
	"github.com/goliatone/go-sitenav/internal/language"
	"github.com/goliatone/go-sitenav/internal/media"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
)

// Media is a presentation-ready media reference: an absolute URL plus the
// kind the template should embed it as.
type Media struct {
	URL  string     `json:"url"`
	Kind media.Kind `json:"kind"`
}

// Item is the common presentation shape for static, news, gallery, documents
// and communication records. Views is populated for news only.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Media       []Media   `json:"media,omitempty"`
	Views       int64     `json:"views,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// Contact is the presentation shape for leadership entries.
type Contact struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Task         string    `json:"task"`
	Address      string    `json:"address"`
	WorkingHours string    `json:"working_hours,omitempty"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	About        string    `json:"about"`
	Photo        *Media    `json:"photo,omitempty"`
}

// Form describes the contact form embedded on communication pages.
type Form struct {
	Fields []string `json:"fields"`
}

// View is what the navigation layer hands to templates. Empty is true when
// the node resolved but its key matched no records, which renders an empty
// page rather than a not-found state.
type View struct {
	Slug     string       `json:"slug"`
	Type     content.Type `json:"type"`
	Title    string       `json:"title"`
	Items    []Item       `json:"items,omitempty"`
	Contacts []Contact    `json:"contacts,omitempty"`
	Form     *Form        `json:"form,omitempty"`
	Empty    bool         `json:"empty"`
}

// Adapter turns a resolved node and its records into a view for one content
// type. Adapters never fail on missing translations or empty record sets;
// those degrade to blanks and the Empty flag.
type Adapter interface {
	Adapt(node *pages.PageNode, records []content.Record, lang string) View
}

// Registry maps every known content type to its adapter. The mapping is
// total over the closed enum; lookups for anything else get the static
// adapter, mirroring the dispatch fallback.
type Registry struct {
	adapters map[content.Type]Adapter
	fallback Adapter
}

// NewRegistry builds the full adapter set over the given media resolver.
func NewRegistry(resolver *media.Resolver) *Registry {
	static := &staticAdapter{resolver: resolver}
	return &Registry{
		adapters: map[content.Type]Adapter{
			content.TypeStatic:        static,
			content.TypeNews:          &newsAdapter{resolver: resolver},
			content.TypeGallery:       &galleryAdapter{resolver: resolver},
			content.TypeDocuments:     &documentsAdapter{resolver: resolver},
			content.TypeLeader:        &leaderAdapter{resolver: resolver},
			content.TypeCommunication: &communicationAdapter{resolver: resolver},
		},
		fallback: static,
	}
}

// Adapter returns the adapter for the given type, falling back to static.
func (r *Registry) Adapter(typ content.Type) Adapter {
	if a, ok := r.adapters[typ]; ok {
		return a
	}
	return r.fallback
}

// Render runs the adapter selected for the instruction's type.
func (r *Registry) Render(node *pages.PageNode, typ content.Type, records []content.Record, lang string) View {
	return r.Adapter(typ).Adapt(node, records, lang)
}

func nodeTitle(node *pages.PageNode, lang string) string {
	if node == nil {
		return ""
	}
	return language.ResolveLabel(node.Titles, lang)
}

func resolveMedia(resolver *media.Resolver, paths []string) []Media {
	if len(paths) == 0 {
		return nil
	}
	out := make([]Media, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		url := p
		if resolver != nil {
			url = resolver.Resolve(p)
		}
		out = append(out, Media{URL: url, Kind: media.Classify(p)})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

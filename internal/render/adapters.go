package render

import (
	"github.com/goliatone/go-sitenav/content"
	"github.com/goliatone/go-sitenav/internal/language"
	"github.com/goliatone/go-sitenav/internal/media"
	"github.com/goliatone/go-sitenav/pages"
)

type staticAdapter struct {
	resolver *media.Resolver
}

func (a *staticAdapter) Adapt(node *pages.PageNode, records []content.Record, lang string) View {
	view := baseView(node, content.TypeStatic, lang)
	for _, rec := range records {
		r, ok := rec.(*content.StaticRecord)
		if !ok {
			continue
		}
		view.Items = append(view.Items, Item{
			ID:          r.ID,
			Title:       language.ResolveField(r.Text, "title", lang),
			Description: language.ResolveField(r.Text, "description", lang),
			Media:       resolveMedia(a.resolver, r.Photos),
			PublishedAt: r.CreatedAt,
		})
	}
	view.Empty = len(view.Items) == 0
	return view
}

type newsAdapter struct {
	resolver *media.Resolver
}

func (a *newsAdapter) Adapt(node *pages.PageNode, records []content.Record, lang string) View {
	view := baseView(node, content.TypeNews, lang)
	for _, rec := range records {
		r, ok := rec.(*content.NewsRecord)
		if !ok {
			continue
		}
		view.Items = append(view.Items, Item{
			ID:          r.ID,
			Title:       language.ResolveField(r.Text, "title", lang),
			Description: language.ResolveField(r.Text, "description", lang),
			Media:       resolveMedia(a.resolver, r.Photos),
			Views:       r.Views,
			PublishedAt: r.CreatedAt,
		})
	}
	view.Empty = len(view.Items) == 0
	return view
}

type galleryAdapter struct {
	resolver *media.Resolver
}

func (a *galleryAdapter) Adapt(node *pages.PageNode, records []content.Record, lang string) View {
	view := baseView(node, content.TypeGallery, lang)
	for _, rec := range records {
		r, ok := rec.(*content.GalleryRecord)
		if !ok {
			continue
		}
		view.Items = append(view.Items, Item{
			ID:          r.ID,
			Title:       language.ResolveField(r.Text, "title", lang),
			Description: language.ResolveField(r.Text, "description", lang),
			Media:       resolveMedia(a.resolver, r.Photos),
			PublishedAt: r.CreatedAt,
		})
	}
	view.Empty = len(view.Items) == 0
	return view
}

type documentsAdapter struct {
	resolver *media.Resolver
}

func (a *documentsAdapter) Adapt(node *pages.PageNode, records []content.Record, lang string) View {
	view := baseView(node, content.TypeDocuments, lang)
	for _, rec := range records {
		r, ok := rec.(*content.DocumentRecord)
		if !ok {
			continue
		}
		view.Items = append(view.Items, Item{
			ID:          r.ID,
			Title:       language.ResolveField(r.Text, "title", lang),
			Description: language.ResolveField(r.Text, "description", lang),
			Media:       resolveMedia(a.resolver, r.Photos),
			PublishedAt: r.CreatedAt,
		})
	}
	view.Empty = len(view.Items) == 0
	return view
}

type leaderAdapter struct {
	resolver *media.Resolver
}

func (a *leaderAdapter) Adapt(node *pages.PageNode, records []content.Record, lang string) View {
	view := baseView(node, content.TypeLeader, lang)
	for _, rec := range records {
		r, ok := rec.(*content.LeaderRecord)
		if !ok {
			continue
		}
		// Biography is the canonical base; older records carry "about".
		about := language.ResolveField(r.Text, "biography", lang)
		if about == "" {
			about = language.ResolveField(r.Text, "about", lang)
		}
		contact := Contact{
			ID:           r.ID,
			Name:         language.ResolveField(r.Text, "name", lang),
			Task:         language.ResolveField(r.Text, "task", lang),
			Address:      language.ResolveField(r.Text, "address", lang),
			WorkingHours: language.ResolveField(r.Text, "workingHours", lang),
			About:        about,
			Phone:        r.Phone,
			Email:        r.Email,
		}
		if photos := resolveMedia(a.resolver, r.MediaPaths()); len(photos) > 0 {
			contact.Photo = &photos[0]
		}
		view.Contacts = append(view.Contacts, contact)
	}
	view.Empty = len(view.Contacts) == 0
	return view
}

type communicationAdapter struct {
	resolver *media.Resolver
}

// formFields matches the submission command payload.
var formFields = []string{"name", "email", "phone", "message"}

func (a *communicationAdapter) Adapt(node *pages.PageNode, records []content.Record, lang string) View {
	view := baseView(node, content.TypeCommunication, lang)
	for _, rec := range records {
		r, ok := rec.(*content.CommunicationRecord)
		if !ok {
			continue
		}
		view.Items = append(view.Items, Item{
			ID:          r.ID,
			Title:       language.ResolveField(r.Text, "title", lang),
			Description: language.ResolveField(r.Text, "description", lang),
			Media:       resolveMedia(a.resolver, r.Photos),
			PublishedAt: r.CreatedAt,
		})
	}
	// The form renders even when the intro copy is missing.
	view.Form = &Form{Fields: formFields}
	view.Empty = len(view.Items) == 0
	return view
}

func baseView(node *pages.PageNode, typ content.Type, lang string) View {
	view := View{Type: typ, Title: nodeTitle(node, lang)}
	if node != nil {
		view.Slug = node.Slug
	}
	return view
}

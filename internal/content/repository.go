package content

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-sitenav/content"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewStaticRepository(db *bun.DB) repository.Repository[*content.StaticRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*content.StaticRecord]{
		NewRecord: func() *content.StaticRecord { return &content.StaticRecord{} },
		GetID: func(r *content.StaticRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *content.StaticRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *content.StaticRecord) string {
			return r.Key
		},
	})
}

func NewNewsRepository(db *bun.DB) repository.Repository[*content.NewsRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*content.NewsRecord]{
		NewRecord: func() *content.NewsRecord { return &content.NewsRecord{} },
		GetID: func(r *content.NewsRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *content.NewsRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *content.NewsRecord) string {
			return r.Key
		},
	})
}

func NewGalleryRepository(db *bun.DB) repository.Repository[*content.GalleryRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*content.GalleryRecord]{
		NewRecord: func() *content.GalleryRecord { return &content.GalleryRecord{} },
		GetID: func(r *content.GalleryRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *content.GalleryRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *content.GalleryRecord) string {
			return r.Key
		},
	})
}

func NewDocumentRepository(db *bun.DB) repository.Repository[*content.DocumentRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*content.DocumentRecord]{
		NewRecord: func() *content.DocumentRecord { return &content.DocumentRecord{} },
		GetID: func(r *content.DocumentRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *content.DocumentRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *content.DocumentRecord) string {
			return r.Key
		},
	})
}

func NewLeaderRepository(db *bun.DB) repository.Repository[*content.LeaderRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*content.LeaderRecord]{
		NewRecord: func() *content.LeaderRecord { return &content.LeaderRecord{} },
		GetID: func(r *content.LeaderRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *content.LeaderRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *content.LeaderRecord) string {
			return r.Key
		},
	})
}

func NewCommunicationRepository(db *bun.DB) repository.Repository[*content.CommunicationRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*content.CommunicationRecord]{
		NewRecord: func() *content.CommunicationRecord { return &content.CommunicationRecord{} },
		GetID: func(r *content.CommunicationRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *content.CommunicationRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *content.CommunicationRecord) string {
			return r.Key
		},
	})
}

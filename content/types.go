package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Type identifies one of the six content shapes a navigation node can carry.
type Type string

const (
	TypeStatic        Type = "static"
	TypeNews          Type = "news"
	TypeGallery       Type = "gallery"
	TypeDocuments     Type = "documents"
	TypeLeader        Type = "leader"
	TypeCommunication Type = "communication"
)

// Types enumerates every known content type in declaration order.
var Types = []Type{
	TypeStatic,
	TypeNews,
	TypeGallery,
	TypeDocuments,
	TypeLeader,
	TypeCommunication,
}

// Known reports whether the type is part of the closed enum. Unknown values
// are dispatched through the static strategy rather than rejected.
func (t Type) Known() bool {
	switch t {
	case TypeStatic, TypeNews, TypeGallery, TypeDocuments, TypeLeader, TypeCommunication:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// TextFields stores language-suffixed text values ("title_uz", "description_ru")
// alongside optional bare legacy keys ("title") kept for untranslated records.
type TextFields map[string]string

// Record is the closed sum over the six content shapes. The unexported marker
// keeps the set closed so adding a seventh variant is a compile-checked change
// in this package, not a silent fallback somewhere else.
type Record interface {
	RecordID() uuid.UUID
	RecordKey() string
	RecordType() Type
	Fields() TextFields
	MediaPaths() []string

	isRecord()
}

// StaticRecord backs plain informational pages.
type StaticRecord struct {
	bun.BaseModel `bun:"table:static_records,alias:sr"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Key       string     `bun:"key,notnull" json:"key"`
	Text      TextFields `bun:"text,type:jsonb,notnull" json:"text"`
	Photos    []string   `bun:"photos,type:jsonb" json:"photos,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (r *StaticRecord) RecordID() uuid.UUID  { return r.ID }
func (r *StaticRecord) RecordKey() string    { return r.Key }
func (r *StaticRecord) RecordType() Type     { return TypeStatic }
func (r *StaticRecord) Fields() TextFields   { return r.Text }
func (r *StaticRecord) MediaPaths() []string { return r.Photos }
func (*StaticRecord) isRecord()              {}

// NewsRecord adds a view counter on top of the common shape.
type NewsRecord struct {
	bun.BaseModel `bun:"table:news_records,alias:nr"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Key       string     `bun:"key,notnull" json:"key"`
	Text      TextFields `bun:"text,type:jsonb,notnull" json:"text"`
	Photos    []string   `bun:"photos,type:jsonb" json:"photos,omitempty"`
	Views     int64      `bun:"views,notnull,default:0" json:"views"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (r *NewsRecord) RecordID() uuid.UUID  { return r.ID }
func (r *NewsRecord) RecordKey() string    { return r.Key }
func (r *NewsRecord) RecordType() Type     { return TypeNews }
func (r *NewsRecord) Fields() TextFields   { return r.Text }
func (r *NewsRecord) MediaPaths() []string { return r.Photos }
func (*NewsRecord) isRecord()              {}

// GalleryRecord groups mixed image/video media under a caption.
type GalleryRecord struct {
	bun.BaseModel `bun:"table:gallery_records,alias:gr"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Key       string     `bun:"key,notnull" json:"key"`
	Text      TextFields `bun:"text,type:jsonb,notnull" json:"text"`
	Photos    []string   `bun:"photos,type:jsonb" json:"photos,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (r *GalleryRecord) RecordID() uuid.UUID  { return r.ID }
func (r *GalleryRecord) RecordKey() string    { return r.Key }
func (r *GalleryRecord) RecordType() Type     { return TypeGallery }
func (r *GalleryRecord) Fields() TextFields   { return r.Text }
func (r *GalleryRecord) MediaPaths() []string { return r.Photos }
func (*GalleryRecord) isRecord()              {}

// DocumentRecord backs announcements and downloadable documents.
type DocumentRecord struct {
	bun.BaseModel `bun:"table:document_records,alias:dr"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Key       string     `bun:"key,notnull" json:"key"`
	Text      TextFields `bun:"text,type:jsonb,notnull" json:"text"`
	Photos    []string   `bun:"photos,type:jsonb" json:"photos,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (r *DocumentRecord) RecordID() uuid.UUID  { return r.ID }
func (r *DocumentRecord) RecordKey() string    { return r.Key }
func (r *DocumentRecord) RecordType() Type     { return TypeDocuments }
func (r *DocumentRecord) Fields() TextFields   { return r.Text }
func (r *DocumentRecord) MediaPaths() []string { return r.Photos }
func (*DocumentRecord) isRecord()              {}

// LeaderRecord carries structured contact fields and a single portrait photo
// instead of the common photos sequence. Localised fields (address, working
// hours, task, biography, display name) live in Text; phone and email are not
// translated.
type LeaderRecord struct {
	bun.BaseModel `bun:"table:leader_records,alias:lr"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Key       string     `bun:"key,notnull" json:"key"`
	Text      TextFields `bun:"text,type:jsonb,notnull" json:"text"`
	Phone     string     `bun:"phone" json:"phone,omitempty"`
	Email     string     `bun:"email" json:"email,omitempty"`
	Photo     string     `bun:"photo" json:"photo,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (r *LeaderRecord) RecordID() uuid.UUID { return r.ID }
func (r *LeaderRecord) RecordKey() string   { return r.Key }
func (r *LeaderRecord) RecordType() Type    { return TypeLeader }
func (r *LeaderRecord) Fields() TextFields  { return r.Text }

func (r *LeaderRecord) MediaPaths() []string {
	if r.Photo == "" {
		return nil
	}
	return []string{r.Photo}
}

func (*LeaderRecord) isRecord() {}

// CommunicationRecord backs the contact page intro shown above the form.
type CommunicationRecord struct {
	bun.BaseModel `bun:"table:communication_records,alias:cr"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Key       string     `bun:"key,notnull" json:"key"`
	Text      TextFields `bun:"text,type:jsonb,notnull" json:"text"`
	Photos    []string   `bun:"photos,type:jsonb" json:"photos,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (r *CommunicationRecord) RecordID() uuid.UUID  { return r.ID }
func (r *CommunicationRecord) RecordKey() string    { return r.Key }
func (r *CommunicationRecord) RecordType() Type     { return TypeCommunication }
func (r *CommunicationRecord) Fields() TextFields   { return r.Text }
func (r *CommunicationRecord) MediaPaths() []string { return r.Photos }
func (*CommunicationRecord) isRecord()              {}

// Application is the public-facing contact-form payload forwarded to the
// collaborator. Validation happens on the command message, not here.
type Application struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

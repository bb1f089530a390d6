package client

import (
	"fmt"
	"time"

	"github.com/goliatone/go-sitenav/content"
	"github.com/goliatone/go-sitenav/internal/identity"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
)

// nodeDTO mirrors one tree node in the collaborator payload.
type nodeDTO struct {
	ID       string            `json:"id"`
	Slug     string            `json:"slug"`
	Type     string            `json:"type"`
	Key      string            `json:"key"`
	Position *int              `json:"position"`
	Titles   map[string]string `json:"titles"`
	Children []nodeDTO         `json:"children"`
}

func decodeNodes(dtos []nodeDTO, parentID *uuid.UUID) []*pages.PageNode {
	if len(dtos) == 0 {
		return nil
	}
	nodes := make([]*pages.PageNode, 0, len(dtos))
	for i, dto := range dtos {
		// Sibling ordinal stands in only when the payload omits position.
		node := &pages.PageNode{
			ID:       parseOrDeriveNodeID(dto),
			ParentID: parentID,
			Slug:     dto.Slug,
			Type:     content.Type(dto.Type),
			Key:      dto.Key,
			Position: i,
			Titles:   dto.Titles,
		}
		if dto.Position != nil {
			node.Position = *dto.Position
		}
		node.Children = decodeNodes(dto.Children, &node.ID)
		nodes = append(nodes, node)
	}
	return nodes
}

func parseOrDeriveNodeID(dto nodeDTO) uuid.UUID {
	if id, err := uuid.Parse(dto.ID); err == nil && id != uuid.Nil {
		return id
	}
	return identity.NodeUUID(dto.Slug)
}

// reservedRecordFields are payload keys that are not localised text. Every
// remaining string field lands in the record's text map, language suffix and
// all, which is exactly what the fallback chain expects.
var reservedRecordFields = map[string]struct{}{
	"id":         {},
	"key":        {},
	"photos":     {},
	"photo":      {},
	"views":      {},
	"phone":      {},
	"email":      {},
	"created_at": {},
	"updated_at": {},
}

func decodeRecords(typ content.Type, key string, raw []map[string]any) []content.Record {
	if len(raw) == 0 {
		return nil
	}
	records := make([]content.Record, 0, len(raw))
	for i, entry := range raw {
		if rec := decodeRecord(typ, key, entry, i); rec != nil {
			records = append(records, rec)
		}
	}
	return records
}

func decodeRecord(typ content.Type, key string, raw map[string]any, ordinal int) content.Record {
	id := recordID(typ, key, raw, ordinal)
	text := textFields(raw)
	photos := stringSlice(raw["photos"])
	createdAt := timeField(raw["created_at"])
	updatedAt := timeField(raw["updated_at"])

	switch typ {
	case content.TypeNews:
		return &content.NewsRecord{
			ID:        id,
			Key:       key,
			Text:      text,
			Photos:    photos,
			Views:     int64Field(raw["views"]),
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
	case content.TypeGallery:
		return &content.GalleryRecord{
			ID:        id,
			Key:       key,
			Text:      text,
			Photos:    photos,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
	case content.TypeDocuments:
		return &content.DocumentRecord{
			ID:        id,
			Key:       key,
			Text:      text,
			Photos:    photos,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
	case content.TypeLeader:
		return &content.LeaderRecord{
			ID:        id,
			Key:       key,
			Text:      text,
			Phone:     stringField(raw["phone"]),
			Email:     stringField(raw["email"]),
			Photo:     stringField(raw["photo"]),
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
	case content.TypeCommunication:
		return &content.CommunicationRecord{
			ID:        id,
			Key:       key,
			Text:      text,
			Photos:    photos,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
	default:
		return &content.StaticRecord{
			ID:        id,
			Key:       key,
			Text:      text,
			Photos:    photos,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
	}
}

func recordID(typ content.Type, key string, raw map[string]any, ordinal int) uuid.UUID {
	discriminator := fmt.Sprintf("%d", ordinal)
	if rawID, ok := raw["id"]; ok {
		str := stringField(rawID)
		if str == "" {
			str = fmt.Sprint(rawID)
		}
		if id, err := uuid.Parse(str); err == nil && id != uuid.Nil {
			return id
		}
		if str != "" && str != "<nil>" {
			discriminator = str
		}
	}
	return identity.RecordUUID(string(typ), key, discriminator)
}

func textFields(raw map[string]any) content.TextFields {
	text := make(content.TextFields)
	for field, value := range raw {
		if _, reserved := reservedRecordFields[field]; reserved {
			continue
		}
		if str, ok := value.(string); ok {
			text[field] = str
		}
	}
	return text
}

func stringField(value any) string {
	str, _ := value.(string)
	return str
}

func stringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok && str != "" {
			out = append(out, str)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func int64Field(value any) int64 {
	switch typed := value.(type) {
	case float64:
		return int64(typed)
	case int64:
		return typed
	case int:
		return int64(typed)
	}
	return 0
}

func timeField(value any) time.Time {
	str, ok := value.(string)
	if !ok || str == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, str); err == nil {
			return ts
		}
	}
	return time.Time{}
}

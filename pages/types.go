package pages

import (
	"time"

	"github.com/goliatone/go-sitenav/content"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PageNode describes a navigation node in the language-keyed page tree.
//
// Nodes are persisted flat (ParentID + Position) and assembled into the nested
// Children form by the repositories. Slug comparison at resolve time is exact
// string equality against the full request path; no trailing-slash or case
// normalisation is applied. Slugs are not guaranteed globally unique: the
// resolver documents first-match-wins in pre-order, and uniqueness enforcement
// belongs to the admin collaborator that owns the write path.
//
// A node's Type is immutable once content exists for its Key; changing it
// would orphan the rendering of the existing records.
type PageNode struct {
	bun.BaseModel `bun:"table:page_nodes,alias:pn"`

	ID       uuid.UUID    `bun:",pk,type:uuid" json:"id"`
	ParentID *uuid.UUID   `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Position int          `bun:"position,notnull,default:0" json:"position"`
	Slug     string       `bun:"slug,notnull" json:"slug"`
	Type     content.Type `bun:"type,notnull" json:"type"`
	Key      string       `bun:"key,notnull" json:"key"`

	// Titles maps language code (uz, ru, en) to the display string.
	Titles map[string]string `bun:"titles,type:jsonb,notnull" json:"titles"`

	// ParentTitles is a denormalised label used only for breadcrumb rendering.
	ParentTitles map[string]string `bun:"parent_titles,type:jsonb" json:"parent_titles,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Children []*PageNode `bun:"rel:has-many,join:id=parent_id" json:"children,omitempty"`
}

// Clone returns a deep copy of the node and its children.
func (n *PageNode) Clone() *PageNode {
	if n == nil {
		return nil
	}
	copied := *n
	if n.ParentID != nil {
		id := *n.ParentID
		copied.ParentID = &id
	}
	if n.Titles != nil {
		copied.Titles = make(map[string]string, len(n.Titles))
		for k, v := range n.Titles {
			copied.Titles[k] = v
		}
	}
	if n.ParentTitles != nil {
		copied.ParentTitles = make(map[string]string, len(n.ParentTitles))
		for k, v := range n.ParentTitles {
			copied.ParentTitles[k] = v
		}
	}
	if len(n.Children) > 0 {
		copied.Children = make([]*PageNode, 0, len(n.Children))
		for _, child := range n.Children {
			copied.Children = append(copied.Children, child.Clone())
		}
	}
	return &copied
}

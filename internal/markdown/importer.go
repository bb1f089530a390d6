package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-sitenav/content"
	contentstore "github.com/goliatone/go-sitenav/internal/content"
	"github.com/goliatone/go-sitenav/internal/identity"
	"github.com/goliatone/go-sitenav/internal/language"
	"github.com/goliatone/go-sitenav/internal/logging"
	pagesint "github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

// Stats summarises one import run.
type Stats struct {
	Nodes   int
	Records int
	Skipped int
}

// Importer seeds the navigation tree and the content collections from a
// directory of Markdown files with YAML frontmatter. It exists for local
// development and tests; production trees come from the collaborator API.
type Importer struct {
	tree     pagesint.TreeWriter
	records  contentstore.Writer
	renderer *Renderer
	logger   interfaces.Logger
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer)

// WithImporterLogger injects the import logger.
func WithImporterLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewImporter creates an importer writing into the given tree and record
// sinks.
func NewImporter(tree pagesint.TreeWriter, records contentstore.Writer, opts ...ImporterOption) *Importer {
	imp := &Importer{
		tree:     tree,
		records:  records,
		renderer: NewRenderer(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(imp)
		}
	}
	return imp
}

// ImportDir imports every .md file under dir.
func (i *Importer) ImportDir(ctx context.Context, dir string) (Stats, error) {
	return i.ImportFS(ctx, os.DirFS(dir))
}

// ImportFS imports every .md file in the filesystem, replacing the current
// tree and appending the seeded records.
func (i *Importer) ImportFS(ctx context.Context, fsys fs.FS) (Stats, error) {
	var stats Stats
	var entries []seedEntry

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(filePath, ".md") {
			return nil
		}

		source, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("read %s: %w", filePath, err)
		}

		entry, err := i.buildEntry(filePath, source)
		if err != nil {
			i.logger.Warn("markdown.import.skipped", "file", filePath, "error", err)
			stats.Skipped++
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return stats, err
	}

	roots := assembleTree(entries)
	if err := i.tree.Replace(ctx, roots); err != nil {
		return stats, fmt.Errorf("replace tree: %w", err)
	}
	stats.Nodes = countNodes(roots)

	for _, entry := range entries {
		if entry.record == nil {
			continue
		}
		if err := i.records.Put(ctx, entry.record); err != nil {
			return stats, fmt.Errorf("seed record for %s: %w", entry.node.Slug, err)
		}
		stats.Records++
	}

	i.logger.Info("markdown.import.done",
		"nodes", stats.Nodes,
		"records", stats.Records,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

type seedEntry struct {
	node   *pages.PageNode
	parent string
	record content.Record
}

func (i *Importer) buildEntry(filePath string, source []byte) (seedEntry, error) {
	desc, body, err := ParseDescriptor(source)
	if err != nil {
		return seedEntry{}, err
	}

	nodeSlug, err := normalizeSlug(desc, filePath)
	if err != nil {
		return seedEntry{}, err
	}

	key := strings.TrimSpace(desc.Key)
	if key == "" {
		key = strings.TrimPrefix(nodeSlug, "/")
	}

	node := &pages.PageNode{
		ID:       identity.NodeUUID(nodeSlug),
		Slug:     nodeSlug,
		Type:     content.Type(strings.TrimSpace(desc.Type)),
		Key:      key,
		Position: desc.Position,
		Titles:   desc.Titles,
	}
	if node.Type == "" {
		node.Type = content.TypeStatic
	}

	record, err := i.buildRecord(filePath, node, desc, body)
	if err != nil {
		return seedEntry{}, err
	}

	return seedEntry{
		node:   node,
		parent: strings.TrimSpace(desc.Parent),
		record: record,
	}, nil
}

func (i *Importer) buildRecord(filePath string, node *pages.PageNode, desc Descriptor, body []byte) (content.Record, error) {
	text := make(content.TextFields, len(desc.Fields)+1)
	for field, value := range desc.Fields {
		text[field] = value
	}

	if len(strings.TrimSpace(string(body))) > 0 {
		rendered, err := i.renderer.Render(body)
		if err != nil {
			return nil, err
		}
		lang := language.Normalize(desc.Language)
		field := "description_" + lang
		if _, exists := text[field]; !exists {
			text[field] = string(rendered)
		}
	}

	id := identity.RecordUUID(string(node.Type), node.Key, filePath)

	typ := node.Type
	if !typ.Known() {
		typ = content.TypeStatic
	}

	switch typ {
	case content.TypeNews:
		return &content.NewsRecord{ID: id, Key: node.Key, Text: text, Photos: desc.Photos}, nil
	case content.TypeGallery:
		return &content.GalleryRecord{ID: id, Key: node.Key, Text: text, Photos: desc.Photos}, nil
	case content.TypeDocuments:
		return &content.DocumentRecord{ID: id, Key: node.Key, Text: text, Photos: desc.Photos}, nil
	case content.TypeLeader:
		return &content.LeaderRecord{
			ID:    id,
			Key:   node.Key,
			Text:  text,
			Phone: desc.Phone,
			Email: desc.Email,
			Photo: desc.Photo,
		}, nil
	case content.TypeCommunication:
		return &content.CommunicationRecord{ID: id, Key: node.Key, Text: text, Photos: desc.Photos}, nil
	default:
		return &content.StaticRecord{ID: id, Key: node.Key, Text: text, Photos: desc.Photos}, nil
	}
}

// assembleTree nests entries under their declared parent slug. Entries whose
// parent is missing become roots so one bad reference cannot hide a subtree.
func assembleTree(entries []seedEntry) []*pages.PageNode {
	bySlug := make(map[string]*pages.PageNode, len(entries))
	for _, entry := range entries {
		if _, exists := bySlug[entry.node.Slug]; !exists {
			bySlug[entry.node.Slug] = entry.node
		}
	}

	var roots []*pages.PageNode
	for _, entry := range entries {
		node := bySlug[entry.node.Slug]
		if node != entry.node {
			// Duplicate slug; first file wins.
			continue
		}
		if entry.parent != "" {
			if parent, ok := bySlug[entry.parent]; ok && parent != node {
				parentID := parent.ID
				node.ParentID = &parentID
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortNodes(roots)
	for _, node := range bySlug {
		sortNodes(node.Children)
	}
	return roots
}

func sortNodes(nodes []*pages.PageNode) {
	sort.SliceStable(nodes, func(a, b int) bool {
		if nodes[a].Position != nodes[b].Position {
			return nodes[a].Position < nodes[b].Position
		}
		return nodes[a].Slug < nodes[b].Slug
	})
}

func countNodes(roots []*pages.PageNode) int {
	count := 0
	for _, node := range roots {
		count++
		count += countNodes(node.Children)
	}
	return count
}

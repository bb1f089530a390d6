package sitenav

import (
	"context"
	"fmt"
	"net/http"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-sitenav/internal/client"
	applicationcmd "github.com/goliatone/go-sitenav/internal/commands/application"
	viewscmd "github.com/goliatone/go-sitenav/internal/commands/views"
	contentstore "github.com/goliatone/go-sitenav/internal/content"
	"github.com/goliatone/go-sitenav/internal/dispatch"
	httpapi "github.com/goliatone/go-sitenav/internal/http"
	"github.com/goliatone/go-sitenav/internal/language"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/logging/gologger"
	"github.com/goliatone/go-sitenav/internal/markdown"
	"github.com/goliatone/go-sitenav/internal/media"
	"github.com/goliatone/go-sitenav/internal/navigation"
	pagesint "github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/internal/render"
	"github.com/goliatone/go-sitenav/internal/storage"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
	"github.com/uptrace/bun"
)

// Navigator exports the navigation pipeline contract for consumers of the
// sitenav package.
type Navigator = navigation.Navigator

// Result exports the navigation outcome type.
type Result = navigation.Result

// State exports the navigation state enum.
type State = navigation.State

const (
	StateRendered   = navigation.StateRendered
	StateEmpty      = navigation.StateEmpty
	StateRoot       = navigation.StateRoot
	StateNotFound   = navigation.StateNotFound
	StateFailed     = navigation.StateFailed
	StateSuperseded = navigation.StateSuperseded
)

// Module is the top level runtime façade: it owns the tree resolver, the
// content dispatch router, the presentation adapters, and the navigator that
// ties them together.
type Module struct {
	cfg Config

	loggerProvider interfaces.LoggerProvider
	db             *bun.DB
	ownsDB         bool
	cacheService   repocache.CacheService
	keySerializer  repocache.KeySerializer

	tree        pagesint.TreeRepository
	treeWriter  pagesint.TreeWriter
	store       contentstore.Store
	storeWriter contentstore.Writer
	langs       language.Source
	submitter   applicationcmd.Submitter

	resolver     *pagesint.Resolver
	router       *dispatch.Router
	registry     *render.Registry
	navigator    *navigation.Navigator
	views        *viewscmd.IncrementHandler
	applications *applicationcmd.SubmitHandler
	importer     *markdown.Importer
	api          *client.Client
}

// Option overrides a module dependency during construction.
type Option func(*Module)

// WithBunDB injects an existing database handle instead of opening one from
// the storage config.
func WithBunDB(db *bun.DB) Option {
	return func(m *Module) {
		m.db = db
	}
}

// WithLoggerProvider overrides the logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.loggerProvider = provider
	}
}

// WithTreeRepository replaces the tree source entirely.
func WithTreeRepository(repo pagesint.TreeRepository) Option {
	return func(m *Module) {
		m.tree = repo
	}
}

// WithContentStore replaces the content source entirely.
func WithContentStore(store contentstore.Store) Option {
	return func(m *Module) {
		m.store = store
	}
}

// WithLanguageSource sets where the active language is read from. Defaults
// to a mutable in-process source starting at the configured default.
func WithLanguageSource(src language.Source) Option {
	return func(m *Module) {
		m.langs = src
	}
}

// WithCache overrides the default cache provider.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(m *Module) {
		m.cacheService = service
		m.keySerializer = serializer
	}
}

// WithSubmitter overrides where contact-form submissions go.
func WithSubmitter(submitter applicationcmd.Submitter) Option {
	return func(m *Module) {
		m.submitter = submitter
	}
}

// New constructs the module from configuration plus optional overrides.
// Sources are picked in order: explicit override, collaborator API when
// enabled, local database when a storage driver is set, in-memory fallback.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if err := m.configureLogging(); err != nil {
		return nil, err
	}
	m.configureCacheDefaults()
	if err := m.configureSources(); err != nil {
		return nil, err
	}
	m.configurePipeline()
	return m, nil
}

func (m *Module) configureLogging() error {
	if m.loggerProvider != nil || !m.cfg.Features.Logger {
		return nil
	}
	if m.cfg.Logging.Provider != "gologger" {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     m.cfg.Logging.Level,
		Format:    m.cfg.Logging.Format,
		AddSource: m.cfg.Logging.AddSource,
		Focus:     m.cfg.Logging.Focus,
	})
	if err != nil {
		return err
	}
	m.loggerProvider = provider
	return nil
}

func (m *Module) configureCacheDefaults() {
	if !m.cfg.Cache.Enabled {
		return
	}
	if m.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		if m.cfg.Cache.DefaultTTL > 0 {
			cacheCfg.TTL = m.cfg.Cache.DefaultTTL
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			m.cacheService = service
		}
	}
	if m.cacheService != nil && m.keySerializer == nil {
		m.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (m *Module) configureSources() error {
	if m.langs == nil {
		m.langs = language.NewMemorySource(m.cfg.DefaultLanguage)
	}

	needsTree := m.tree == nil
	needsStore := m.store == nil

	if m.cfg.API.Enabled && (needsTree || needsStore || m.submitter == nil) {
		api, err := client.New(client.Options{
			BaseURL: m.cfg.API.BaseURL,
			Token:   m.cfg.API.Token,
			Timeout: m.cfg.API.Timeout,
			Logger:  logging.ClientLogger(m.loggerProvider),
		})
		if err != nil {
			return err
		}
		m.api = api
		if needsTree {
			m.tree = api
			needsTree = false
		}
		if needsStore {
			m.store = api
			needsStore = false
		}
		if m.submitter == nil {
			m.submitter = api
		}
	}

	if (needsTree || needsStore) && m.db == nil && m.cfg.Storage.Driver != "" {
		db, err := storage.Open(m.cfg.Storage.Driver, m.cfg.Storage.DSN)
		if err != nil {
			return err
		}
		if err := storage.Migrate(context.Background(), db); err != nil {
			return fmt.Errorf("migrate storage: %w", err)
		}
		m.db = db
		m.ownsDB = true
	}

	if m.db != nil {
		if needsTree {
			repo := pagesint.NewBunTreeRepositoryWithCache(m.db, m.cacheService, m.keySerializer)
			m.tree = repo
			m.treeWriter = repo
			needsTree = false
		}
		if needsStore {
			store := contentstore.NewBunStoreWithCache(m.db, m.cacheService, m.keySerializer)
			m.store = store
			m.storeWriter = store
			needsStore = false
		}
	}

	if needsTree {
		repo := pagesint.NewMemoryTreeRepository()
		m.tree = repo
		m.treeWriter = repo
	}
	if needsStore {
		store := contentstore.NewMemoryStore()
		m.store = store
		m.storeWriter = store
	}
	return nil
}

func (m *Module) configurePipeline() {
	m.resolver = pagesint.NewResolver(m.tree,
		pagesint.WithResolverLogger(logging.PagesLogger(m.loggerProvider)),
	)

	m.views = viewscmd.NewIncrementHandler(m.store, logging.DispatchLogger(m.loggerProvider))
	m.router = dispatch.NewRouter(m.store,
		dispatch.WithRouterLogger(logging.DispatchLogger(m.loggerProvider)),
		dispatch.WithViewCounter(m.views),
	)

	m.registry = render.NewRegistry(media.NewResolver(m.cfg.Media.BaseURL))

	m.navigator = navigation.NewNavigator(m.resolver, m.router, m.registry,
		navigation.WithNavigatorLogger(logging.NavigationLogger(m.loggerProvider)),
		navigation.WithLanguageSource(m.langs),
	)

	if m.submitter != nil {
		m.applications = applicationcmd.NewSubmitHandler(m.submitter, logging.ClientLogger(m.loggerProvider))
	}

	if m.cfg.Features.Markdown && m.treeWriter != nil && m.storeWriter != nil {
		m.importer = markdown.NewImporter(m.treeWriter, m.storeWriter,
			markdown.WithImporterLogger(logging.MarkdownLogger(m.loggerProvider)),
		)
	}
}

// Navigate resolves a path into a presentation-ready result.
func (m *Module) Navigate(ctx context.Context, path string) Result {
	return m.navigator.Navigate(ctx, path)
}

// Navigator returns the wired navigation pipeline.
func (m *Module) Navigator() *Navigator {
	return m.navigator
}

// SetLanguage switches the site-wide language when the module owns a mutable
// language source. It is a no-op otherwise.
func (m *Module) SetLanguage(code string) {
	if src, ok := m.langs.(*language.MemorySource); ok {
		src.Set(code)
	}
}

// Language reports the active language.
func (m *Module) Language(ctx context.Context) string {
	return language.Normalize(m.langs.Current(ctx))
}

// Views returns the fire-and-forget view counter handler.
func (m *Module) Views() *viewscmd.IncrementHandler {
	return m.views
}

// Applications returns the contact-form command handler, nil when no
// submitter is configured.
func (m *Module) Applications() *applicationcmd.SubmitHandler {
	return m.applications
}

// Importer returns the markdown seeder, nil unless the markdown feature is
// enabled and the configured sources are writable.
func (m *Module) Importer() *markdown.Importer {
	return m.importer
}

// SeedFromMarkdown imports the configured content directory.
func (m *Module) SeedFromMarkdown(ctx context.Context) (markdown.Stats, error) {
	if m.importer == nil {
		return markdown.Stats{}, fmt.Errorf("sitenav: markdown seeding is not configured")
	}
	return m.importer.ImportDir(ctx, m.cfg.Markdown.ContentDir)
}

// MountPublicAPI registers the HTTP surface on the given mux under base.
func (m *Module) MountPublicAPI(mux *http.ServeMux, base string) {
	opts := []httpapi.PublicAPIOption{
		httpapi.WithPublicLogger(logging.ModuleLogger(m.loggerProvider, "sitenav.http")),
	}
	if m.applications != nil {
		opts = append(opts, httpapi.WithApplicationHandler(m.applications))
	}
	if src, ok := m.langs.(*language.MemorySource); ok {
		opts = append(opts, httpapi.WithLanguageSwitcher(src))
	}
	httpapi.NewPublicAPI(m.navigator, opts...).Register(mux, base)
}

// DB exposes the underlying database handle, nil when no local storage is
// configured.
func (m *Module) DB() *bun.DB {
	return m.db
}

// Close releases resources the module opened itself. Injected handles stay
// open.
func (m *Module) Close() error {
	if m.ownsDB && m.db != nil {
		return m.db.Close()
	}
	return nil
}

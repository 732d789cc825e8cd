package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"forge3d/internal/catalog"
	"forge3d/internal/forge3d"
	"forge3d/internal/logging"
)

// Callback receives the outcome of a logical operation. Callbacks always run
// on the session's Dispatcher, never on a transport goroutine.
type Callback[T any] func(Outcome[T])

// Options describes Session construction parameters.
type Options struct {
	// Client is the transport the session owns for its lifetime. Required.
	Client *forge3d.Client
	// Dispatcher receives every completion. Defaults to Direct.
	Dispatcher Dispatcher
	// Catalog is the cache updated by list operations. Defaults to a fresh
	// empty catalog.
	Catalog *catalog.Catalog
	Logger  *slog.Logger
}

// Session owns one client and sequences requests against it. The in-flight
// download set and the catalog are the only mutable shared state; the set is
// mutex-guarded and the catalog is only written from the Dispatcher.
type Session struct {
	client     *forge3d.Client
	dispatcher Dispatcher
	catalog    *catalog.Catalog
	logger     *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewSession constructs a Session from the supplied options.
func NewSession(opts Options) (*Session, error) {
	if opts.Client == nil {
		return nil, errors.New("bridge: client is required")
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = Direct{}
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	return &Session{
		client:     opts.Client,
		dispatcher: dispatcher,
		catalog:    cat,
		logger:     logging.NewComponentLogger(opts.Logger, "bridge"),
		inflight:   make(map[string]struct{}),
	}, nil
}

// Catalog exposes the cache the session keeps consistent with server
// responses.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// CheckHealth probes the bridge endpoint. Any 200 body counts as healthy;
// the raw body is the success payload.
func (s *Session) CheckHealth(cb Callback[string]) {
	comp := newCompletion(s.dispatcher, cb)
	go run(s, "check-health", comp, func(ctx context.Context) (string, error) {
		return s.client.Get(ctx, forge3d.HealthPath())
	})
}

// ListProjects fetches and decodes the project list. On success the catalog's
// project snapshot is replaced before the callback observes the outcome; on
// failure the snapshot is left exactly as it was.
func (s *Session) ListProjects(cb Callback[[]forge3d.Project]) {
	comp := newCompletion(s.dispatcher, func(outcome Outcome[[]forge3d.Project]) {
		if outcome.OK() {
			s.catalog.SetProjects(outcome.Value())
		}
		if cb != nil {
			cb(outcome)
		}
	})
	go run(s, "list-projects", comp, func(ctx context.Context) ([]forge3d.Project, error) {
		body, err := s.client.Get(ctx, forge3d.ProjectsPath())
		if err != nil {
			return nil, err
		}
		return forge3d.DecodeProjects(body)
	})
}

// ListAssets fetches and decodes the asset list for a project, replacing the
// catalog's asset snapshot on success only.
func (s *Session) ListAssets(projectID string, cb Callback[[]forge3d.Asset]) {
	comp := newCompletion(s.dispatcher, func(outcome Outcome[[]forge3d.Asset]) {
		if outcome.OK() {
			s.catalog.SetAssets(outcome.Value())
		}
		if cb != nil {
			cb(outcome)
		}
	})
	go run(s, "list-assets", comp, func(ctx context.Context) ([]forge3d.Asset, error) {
		body, err := s.client.Get(ctx, forge3d.AssetsPath(projectID))
		if err != nil {
			return nil, err
		}
		return forge3d.DecodeAssets(body)
	})
}

// DownloadAsset fetches the asset's FBX payload into dest and yields dest as
// the success payload. At most one download per asset id is in flight at a
// time; a duplicate request fails fast without a transport call. The id
// leaves the in-flight set on the Dispatcher, immediately before the
// callback observes the outcome.
func (s *Session) DownloadAsset(assetID, dest string, cb Callback[string]) {
	if !s.beginDownload(assetID) {
		newCompletion(s.dispatcher, cb).deliver(
			Failure[string](fmt.Sprintf("download already in progress for asset %s", assetID)))
		return
	}
	comp := newCompletion(s.dispatcher, func(outcome Outcome[string]) {
		s.endDownload(assetID)
		if cb != nil {
			cb(outcome)
		}
	})
	go run(s, "download-asset", comp, func(ctx context.Context) (string, error) {
		logging.WithContext(ctx, s.logger).Debug("downloading asset",
			logging.String(logging.FieldAssetID, assetID),
			logging.String("dest", dest),
		)
		return s.client.DownloadToFile(ctx, forge3d.DownloadPath(assetID), dest)
	})
}

// ListMaterialPresets fetches the server's material presets. The raw JSON
// body is passed through untouched and nothing is cached.
func (s *Session) ListMaterialPresets(cb Callback[string]) {
	comp := newCompletion(s.dispatcher, cb)
	go run(s, "list-material-presets", comp, func(ctx context.Context) (string, error) {
		return s.client.Get(ctx, forge3d.MaterialPresetsPath())
	})
}

// IsDownloading reports whether assetID currently occupies the in-flight set.
func (s *Session) IsDownloading(assetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[assetID]
	return ok
}

// InFlightCount reports the size of the in-flight download set.
func (s *Session) InFlightCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}

func (s *Session) beginDownload(assetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[assetID]; ok {
		return false
	}
	s.inflight[assetID] = struct{}{}
	return true
}

func (s *Session) endDownload(assetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, assetID)
}

// run executes one logical operation on the calling goroutine: exactly one
// transport call, an optional decode folded into fn, then exactly one
// delivery. Each request carries a fresh correlation id for the logs.
func run[T any](s *Session, operation string, comp *completion[T], fn func(context.Context) (T, error)) {
	requestID := uuid.NewString()
	ctx := logging.WithRequestID(context.Background(), requestID)
	logger := logging.WithContext(ctx, s.logger).With(
		logging.String(logging.FieldOperation, operation))

	logger.Debug("dispatching request")
	value, err := fn(ctx)
	if err != nil {
		logger.Warn("operation failed", logging.Error(err))
		comp.deliver(Failure[T](err.Error()))
		return
	}
	logger.Debug("operation complete")
	comp.deliver(Success(value))
}

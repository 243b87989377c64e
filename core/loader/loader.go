package loader

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Feature is a module that registers its own routes.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(app fiber.Router) error
}

// Initializer is implemented by features that load state in the background
// after their routes are registered.
type Initializer interface {
	Init(ctx context.Context) error
}

// Manager holds the registered features.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty feature manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register adds a feature to the manager.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features in registration order.
func (m *Manager) Features() []Feature {
	return m.features
}

// LoadAll registers the routes of every enabled feature.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.logger.Info("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}

// InitAll starts Init on every enabled feature that implements Initializer.
// The returned channel receives the first error, or nil, and is then closed.
func (m *Manager) InitAll(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range m.features {
		initializer, ok := f.(Initializer)
		if !ok || !f.IsEnabled() {
			continue
		}
		g.Go(func() error {
			if err := initializer.Init(gctx); err != nil {
				return fmt.Errorf("failed to initialize feature %s: %w", f.Name(), err)
			}
			return nil
		})
	}
	go func() {
		done <- g.Wait()
		close(done)
	}()
	return done
}

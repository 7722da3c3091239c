package publisher

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

var errAlreadyRegistered = errors.New("publisher already registered")

type publisher interface {
	// Write publishes the result tables to the adapter's destination.
	Write(ctx context.Context, tables []model.Table) error
}

// Registry fans result tables out to every registered publisher in
// registration order.
type Registry struct {
	names      []string
	publishers map[string]publisher
	logger     *zap.Logger
}

func New() *Registry {
	return &Registry{
		publishers: make(map[string]publisher),
		logger:     zap.L(),
	}
}

func (r *Registry) Register(name string, p publisher) error {
	if _, ok := r.publishers[name]; ok {
		return fmt.Errorf("%s: %w", name, errAlreadyRegistered)
	}
	r.publishers[name] = p
	r.names = append(r.names, name)
	return nil
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Publish hands the tables to every publisher. A failing publisher does not
// stop the others; all failures are returned joined.
func (r *Registry) Publish(ctx context.Context, tables ...model.Table) error {
	var errs []error
	for _, name := range r.names {
		if err := r.publishers[name].Write(ctx, tables); err != nil {
			r.logger.Error("failed to publish tables", zap.Error(err), zap.String("publisher", name))
			errs = append(errs, fmt.Errorf("publisher %s: %w", name, err))
			continue
		}
		r.logger.Debug("published tables", zap.Int("count", len(tables)), zap.String("publisher", name))
	}
	return errors.Join(errs...)
}

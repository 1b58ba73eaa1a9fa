package document

import (
	"context"
	"fmt"

	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/pkg/messaging"
	"github.com/osgbtech/screening-api/pkg/metrics"
)

// Kind selects which document the generation collaborator produces.
type Kind string

const (
	KindTaskOrder    Kind = "task_order"
	KindVisitPlan    Kind = "visit_plan"
	KindResultReport Kind = "result_report"
)

func (k Kind) Valid() bool {
	switch k {
	case KindTaskOrder, KindVisitPlan, KindResultReport:
		return true
	default:
		return false
	}
}

// Bundle is the resolved appointment handed to the generator: the record
// plus the catalog entries its selections reference.
type Bundle struct {
	Appointment *model.Appointment  `json:"appointment"`
	Company     *model.Company      `json:"company"`
	Staff       []*model.Staff      `json:"staff"`
	Tests       []*model.HealthTest `json:"tests"`
}

// Generator requests document generation from the external collaborator.
// The core performs no retries; failure surfaces to the caller once.
type Generator interface {
	Generate(ctx context.Context, kind Kind, bundle *Bundle) error
}

type generator struct {
	broker  messaging.Broker
	metrics *metrics.Metrics
}

func NewGenerator(broker messaging.Broker, metrics *metrics.Metrics) Generator {
	return &generator{
		broker:  broker,
		metrics: metrics,
	}
}

type request struct {
	Kind   Kind    `json:"kind"`
	Bundle *Bundle `json:"bundle"`
}

func (g *generator) Generate(ctx context.Context, kind Kind, bundle *Bundle) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown document kind: %s", kind)
	}
	if bundle == nil || bundle.Appointment == nil {
		return fmt.Errorf("document bundle requires an appointment")
	}

	if err := g.broker.Publish(ctx, messaging.ChannelDocuments, &request{Kind: kind, Bundle: bundle}); err != nil {
		return fmt.Errorf("failed to request %s generation: %w", kind, err)
	}

	g.metrics.DocumentsRequested.WithLabelValues(string(kind)).Inc()
	return nil
}

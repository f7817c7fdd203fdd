package dues

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/shared"
	"go.uber.org/zap"
)

// GenerationService materializes a period's bills: every active
// household crossed with every dues category, skipping combinations
// that already exist.
type GenerationService struct {
	billRepo      dues.BillRepository
	categoryRepo  dues.CategoryRepository
	householdRepo household.Repository
	events        shared.EventPublisher
	logger        *zap.Logger
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(
	billRepo dues.BillRepository,
	categoryRepo dues.CategoryRepository,
	householdRepo household.Repository,
	events shared.EventPublisher,
	logger *zap.Logger,
) *GenerationService {
	return &GenerationService{
		billRepo:      billRepo,
		categoryRepo:  categoryRepo,
		householdRepo: householdRepo,
		events:        events,
		logger:        logger,
	}
}

// Generate creates the period's bills. Rerunning with the same inputs
// is a no-op for combinations that already exist; only the newly
// created count changes.
func (s *GenerationService) Generate(ctx context.Context, associationID uuid.UUID, req GenerateBillsRequest) (*GenerationResponse, error) {
	period, err := dues.NewPeriod(req.Month, req.Year)
	if err != nil {
		return nil, err
	}

	households, err := s.householdRepo.FindActive(ctx, associationID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListAll(ctx, associationID)
	if err != nil {
		return nil, err
	}

	householdIDs := make([]uuid.UUID, 0, len(households))
	for i := range households {
		householdIDs = append(householdIDs, households[i].ID)
	}

	plan, err := dues.BuildGenerationPlan(associationID, householdIDs, categories, period)
	if err != nil {
		return nil, err
	}

	created, err := s.billRepo.InsertIfAbsent(ctx, plan)
	if err != nil {
		return nil, err
	}

	result := dues.GenerationResult{
		Period:    period,
		Requested: len(plan),
		Created:   created,
		Skipped:   len(plan) - created,
	}

	s.logger.Info("bills generated",
		zap.String("association_id", associationID.String()),
		zap.String("period", period.String()),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))

	if result.Created > 0 {
		event := dues.NewBillsGeneratedEvent(associationID, result)
		if err := s.events.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish generation event", zap.Error(err))
		}
	}

	return &GenerationResponse{
		Month:     period.Month,
		Year:      period.Year,
		Requested: result.Requested,
		Created:   result.Created,
		Skipped:   result.Skipped,
	}, nil
}

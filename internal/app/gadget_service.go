package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"imf-gadget-api/internal/events"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/pkg/random"
	"imf-gadget-api/internal/repository"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// GadgetListCache caches raw list-query results. Implementations may be
// absent (nil) in which case the service goes straight to the store.
type GadgetListCache interface {
	GetList(ctx context.Context, status *model.GadgetStatus) ([]model.Gadget, bool, error)
	SetList(ctx context.Context, status *model.GadgetStatus, gadgets []model.Gadget) error
	Invalidate(ctx context.Context) error
}

// LifecyclePublisher emits gadget lifecycle events. Best effort: publish
// failures never fail the request.
type LifecyclePublisher interface {
	Publish(ctx context.Context, eventType, gadgetID string) error
}

type GadgetService struct {
	gadgetRepo repository.GadgetRepository
	cache      GadgetListCache
	publisher  LifecyclePublisher
	rng        *random.Generator
}

// GadgetView is a gadget decorated with the per-call mission success
// probability. The probability is never persisted; repeated reads of the
// same gadget yield different values.
type GadgetView struct {
	model.Gadget
	MissionSuccessProbability string `json:"missionSuccessProbability"`
}

type UpdateGadgetInput struct {
	Name   *string
	Status *model.GadgetStatus
}

type SelfDestructResult struct {
	Message          string `json:"message"`
	ConfirmationCode int    `json:"confirmationCode"`
}

func NewGadgetService(gadgetRepo repository.GadgetRepository, cache GadgetListCache, publisher LifecyclePublisher, rng *random.Generator) *GadgetService {
	return &GadgetService{
		gadgetRepo: gadgetRepo,
		cache:      cache,
		publisher:  publisher,
		rng:        rng,
	}
}

// Create stores a new gadget. A blank name gets a random two-word
// codename; collisions with existing gadget names are not prevented.
func (s *GadgetService) Create(ctx context.Context, name string) (*model.Gadget, error) {
	if name == "" {
		name = s.rng.Codename()
	}

	gadget := &model.Gadget{
		ID:     uuid.NewString(),
		Name:   name,
		Status: model.GadgetAvailable,
	}
	if err := s.gadgetRepo.Create(ctx, gadget); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publish(ctx, events.TypeGadgetCreated, gadget.ID)
	return gadget, nil
}

// List returns gadgets, optionally filtered by exact status match, each
// decorated with a fresh mission success probability.
func (s *GadgetService) List(ctx context.Context, status *model.GadgetStatus) ([]GadgetView, error) {
	gadgets, err := s.loadGadgets(ctx, status)
	if err != nil {
		return nil, err
	}

	views := make([]GadgetView, 0, len(gadgets))
	for _, gadget := range gadgets {
		views = append(views, GadgetView{
			Gadget:                    gadget,
			MissionSuccessProbability: fmt.Sprintf("%d%%", s.rng.SuccessProbability()),
		})
	}
	return views, nil
}

// Update applies an allow-listed patch. Fields outside name/status never
// reach this method; handlers reject them at the boundary.
func (s *GadgetService) Update(ctx context.Context, id string, input UpdateGadgetInput) (*model.Gadget, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidInput
	}

	gadget, err := s.gadgetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		gadget.Name = *input.Name
	}
	if input.Status != nil {
		gadget.Status = *input.Status
	}

	if err := s.gadgetRepo.Save(ctx, gadget); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return gadget, nil
}

// Decommission marks the gadget Decommissioned and stamps the time. No
// prior-state check: decommissioning twice succeeds and refreshes the
// timestamp.
func (s *GadgetService) Decommission(ctx context.Context, id string) (*model.Gadget, error) {
	gadget, err := s.gadgetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	gadget.Status = model.GadgetDecommissioned
	gadget.DecommissionedAt = &now

	if err := s.gadgetRepo.Save(ctx, gadget); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publish(ctx, events.TypeGadgetDecommissioned, gadget.ID)
	return gadget, nil
}

// SelfDestruct generates a confirmation code for the supplied id. The id
// is never checked against the store and the code is never recorded or
// consumed; the sequence is theater by design.
func (s *GadgetService) SelfDestruct(ctx context.Context, id string) *SelfDestructResult {
	s.publish(ctx, events.TypeGadgetSelfDestruct, id)
	return &SelfDestructResult{
		Message:          fmt.Sprintf("Self-destruct sequence initiated for gadget %s", id),
		ConfirmationCode: s.rng.ConfirmationCode(),
	}
}

func (s *GadgetService) loadGadgets(ctx context.Context, status *model.GadgetStatus) ([]model.Gadget, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.GetList(ctx, status)
		if err != nil {
			log.Printf("gadget cache read failed: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	gadgets, err := s.gadgetRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, status, gadgets); err != nil {
			log.Printf("gadget cache write failed: %v", err)
		}
	}
	return gadgets, nil
}

func (s *GadgetService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("gadget cache invalidate failed: %v", err)
	}
}

func (s *GadgetService) publish(ctx context.Context, eventType, gadgetID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, gadgetID); err != nil {
		log.Printf("publish %s event failed: %v", eventType, err)
	}
}

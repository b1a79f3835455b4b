package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"gmumarket/internal/domain/entity"
	"gmumarket/internal/domain/repository"
	"gmumarket/pkg/errors"
	"gmumarket/pkg/logger"
)

// Confirmer gates destructive actions behind an explicit user decision.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// DashboardUseCase keeps the in-memory listing collection consistent with
// the outcomes of fetch/create/update/delete without a full refetch after
// every mutation. The collection is ordered; creates prepend, updates
// replace in place, deletes filter out. Not safe for concurrent use:
// callers drive it from a single goroutine, mirroring the event-driven UI
// it serves.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	confirmer   Confirmer
	validate    *validator.Validate

	products []*entity.Product
	profile  *entity.User
	selected map[string]bool
}

func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	confirmer Confirmer,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		confirmer:   confirmer,
		validate:    validator.New(),
		selected:    make(map[string]bool),
	}
}

// Load resets the collection. Authenticated sessions load the seller's own
// listings plus profile; anonymous sessions fall back to the public active
// listings with no profile. Authentication is decided by the session
// store's token slot, not by probing a privileged endpoint, so a failed
// profile fetch while a token is held surfaces as a real error.
func (uc *DashboardUseCase) Load(ctx context.Context) error {
	uc.selected = make(map[string]bool)

	if !uc.sessionRepo.IsAuthenticated(ctx) {
		products, err := uc.productRepo.List(ctx, repository.ProductFilter{Status: entity.StatusActive})
		if err != nil {
			return err
		}
		uc.profile = nil
		uc.products = products
		return nil
	}

	profile, err := uc.userRepo.GetProfile(ctx)
	if err != nil {
		return err
	}

	products, err := uc.productRepo.ListMine(ctx)
	if err != nil {
		return err
	}

	uc.profile = profile
	uc.products = products
	return nil
}

// Products returns the current collection in display order.
func (uc *DashboardUseCase) Products() []*entity.Product {
	return uc.products
}

// Profile returns the loaded profile, or nil for anonymous sessions.
func (uc *DashboardUseCase) Profile() *entity.User {
	return uc.profile
}

type CreateProductInput struct {
	Name        string `validate:"required"`
	Description string
	Price       decimal.Decimal
	Category    string `validate:"required,oneof=textbooks electronics furniture clothing supplies sports other"`
	Condition   string `validate:"required,oneof=new like_new good fair used"`
	Status      string `validate:"omitempty,oneof=active draft sold"`
	Image       string `validate:"omitempty,url"`
}

// Create submits a new listing and prepends the server's canonical record
// to the collection. The record keeps the server-assigned id verbatim; no
// placeholder entry exists before the response arrives.
func (uc *DashboardUseCase) Create(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.BadRequest("invalid product data", err)
	}
	if input.Price.IsNegative() {
		return nil, errors.BadRequest("price must not be negative", nil)
	}
	if input.Status == "" {
		input.Status = entity.StatusActive
	}

	created, err := uc.productRepo.Create(ctx, &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Condition:   input.Condition,
		Status:      input.Status,
		Image:       input.Image,
	})
	if err != nil {
		return nil, err
	}

	uc.products = append([]*entity.Product{created}, uc.products...)
	return created, nil
}

// Update applies a partial update and replaces the matching entry in
// place, preserving its position. On failure the collection is untouched.
func (uc *DashboardUseCase) Update(ctx context.Context, id string, patch repository.ProductUpdate) (*entity.Product, error) {
	updated, err := uc.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	for i, product := range uc.products {
		if product.ID == id {
			uc.products[i] = updated
			break
		}
	}

	return updated, nil
}

// Delete asks the confirmer before issuing any request. A declined
// confirmation performs no network call and returns false. On success the
// entry is filtered out of the collection and dropped from the selection.
func (uc *DashboardUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if !uc.confirmer.Confirm("Are you sure you want to delete this listing?") {
		return false, nil
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return false, err
	}

	kept := uc.products[:0]
	for _, product := range uc.products {
		if product.ID != id {
			kept = append(kept, product)
		}
	}
	uc.products = kept
	delete(uc.selected, id)

	return true, nil
}

// RecordView bumps the server-side view counter. Fire and forget: a
// failure is logged and never surfaced.
func (uc *DashboardUseCase) RecordView(ctx context.Context, id string) {
	if err := uc.productRepo.IncrementViews(ctx, id); err != nil {
		logger.Debug().Err(err).Str("product_id", id).Msg("increment views failed")
	}
}

// ToggleSelect flips an entry's membership in the selection set. Selection
// is keyed by product id, so it stays correct when creates reorder the
// collection.
func (uc *DashboardUseCase) ToggleSelect(id string) {
	if uc.selected[id] {
		delete(uc.selected, id)
		return
	}
	uc.selected[id] = true
}

// SelectedIDs returns the selected ids in collection order.
func (uc *DashboardUseCase) SelectedIDs() []string {
	ids := make([]string, 0, len(uc.selected))
	for _, product := range uc.products {
		if uc.selected[product.ID] {
			ids = append(ids, product.ID)
		}
	}
	return ids
}

package repository

import (
	"context"
	"net/http"

	"gmumarket/internal/domain/entity"
	"gmumarket/internal/domain/repository"
	"gmumarket/internal/infrastructure/rest"
	"gmumarket/pkg/utils"
)

type restProductRepository struct {
	client *rest.Client
}

func NewRESTProductRepository(client *rest.Client) repository.ProductRepository {
	return &restProductRepository{
		client: client,
	}
}

// createProductPayload carries only the client-writable fields; id and
// views are server-owned.
type createProductPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	Status      string `json:"status"`
	Image       string `json:"image,omitempty"`
}

func (r *restProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	q := utils.NewQuery()
	q.Set("category", filter.Category)
	q.Set("condition", filter.Condition)
	q.Set("status", filter.Status)
	q.Set("search", filter.Search)
	q.SetDecimal("min_price", filter.MinPrice)
	q.SetDecimal("max_price", filter.MaxPrice)

	path := "/products/"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var products []*entity.Product
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *restProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.Do(ctx, http.MethodGet, "/products/"+id+"/", nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *restProductRepository) ListMine(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := r.client.Do(ctx, http.MethodGet, "/products/my_products/", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *restProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	payload := createProductPayload{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		Category:    product.Category,
		Condition:   product.Condition,
		Status:      product.Status,
		Image:       product.Image,
	}

	var created entity.Product
	if err := r.client.Do(ctx, http.MethodPost, "/products/", payload, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *restProductRepository) Update(ctx context.Context, id string, patch repository.ProductUpdate) (*entity.Product, error) {
	var updated entity.Product
	if err := r.client.Do(ctx, http.MethodPatch, "/products/"+id+"/", patch, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *restProductRepository) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, "/products/"+id+"/", nil, nil)
}

func (r *restProductRepository) IncrementViews(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodPost, "/products/"+id+"/increment_views/", nil, nil)
}

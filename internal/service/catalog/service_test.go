package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
	catalogRepo "github.com/Jelenicat/abeauty/internal/infra/storage/catalog"
	"github.com/Jelenicat/abeauty/pkg/ptr"
)

type fakeCatalogRepo struct {
	services   []*domain.Service
	categories map[string]*domain.Category
}

func (f *fakeCatalogRepo) ListServices(_ context.Context, categoryID *string) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0)
	for _, s := range f.services {
		if categoryID != nil && s.CategoryID != *categoryID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	cat, ok := f.categories[categoryID]
	if !ok {
		return nil, catalogRepo.ErrCategoryNotFound
	}
	return cat, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	repo := &fakeCatalogRepo{
		services: []*domain.Service{
			{ID: "svc1", Name: "Šišanje", CategoryID: "cat-hair", DurationMin: 60, BasePrice: 1000, DiscountPercent: 10},
			{ID: "svc2", Name: "Feniranje", CategoryID: "cat-hair", DurationMin: 30, BasePrice: 600},
			{ID: "svc3", Name: "Manikir", CategoryID: "cat-nails", DurationMin: 45, BasePrice: 1200},
		},
		categories: map[string]*domain.Category{
			"cat-hair":  {ID: "cat-hair", Name: "Kosa"},
			"cat-nails": {ID: "cat-nails", Name: "Nokti"},
		},
	}
	return NewService(repo, nopLogger{})
}

func TestListServicesAll(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ListServices(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Services, 3)

	// Цена со скидкой считается на лету
	assert.Equal(t, "svc1", resp.Services[0].ID)
	assert.Equal(t, 900, resp.Services[0].FinalPrice)
	assert.Equal(t, 600, resp.Services[1].FinalPrice, "no discount keeps the base price")
}

func TestListServicesByCategory(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ListServices(context.Background(), ptr.Ptr("cat-nails"))
	require.NoError(t, err)

	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Manikir", resp.Services[0].Name)
}

func TestListServicesUnknownCategory(t *testing.T) {
	svc := newTestService()

	_, err := svc.ListServices(context.Background(), ptr.Ptr("cat-ghost"))
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

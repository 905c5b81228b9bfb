package dashboard

import (
	"context"

	"github.com/AsmaaWasel/Dashboard/apiclient"
	"github.com/AsmaaWasel/Dashboard/cache"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/objects"
)

// Categories lists the sidebar categories, served from the cache when possible.
func (d *Dashboard) Categories(ctx context.Context, credential apiclient.Credential) ([]objects.Category, error) {

	scope := cache.Scope(string(credential))
	if categories, ok := d.cache.Get(ctx, scope); ok {
		return categories, nil
	}

	categories, err := d.backend.ListCategories(ctx, credential)
	if err != nil {
		return nil, err
	}

	d.cache.Set(ctx, scope, categories)
	return categories, nil
}

func (d *Dashboard) AddCategory(ctx context.Context, credential apiclient.Credential, form forms.CategoryForm) (objects.Category, error) {

	if err := d.validate(&form); err != nil {
		return objects.Category{}, err
	}

	category, err := d.backend.CreateCategory(ctx, credential, form)
	if err != nil {
		return objects.Category{}, err
	}

	d.cache.Invalidate(ctx, cache.Scope(string(credential)))
	return category, nil
}

func (d *Dashboard) RenameCategory(ctx context.Context, credential apiclient.Credential, categoryID string, form forms.CategoryForm) (objects.Category, error) {

	if err := d.validate(&form); err != nil {
		return objects.Category{}, err
	}

	category, err := d.backend.UpdateCategory(ctx, credential, categoryID, form)
	if err != nil {
		return objects.Category{}, err
	}

	d.cache.Invalidate(ctx, cache.Scope(string(credential)))
	return category, nil
}

// DeleteCategory removes the category and empties the services table when it
// was showing that category.
func (d *Dashboard) DeleteCategory(ctx context.Context, credential apiclient.Credential, categoryID string) error {

	if err := d.backend.DeleteCategory(ctx, credential, categoryID); err != nil {
		return err
	}

	d.cache.Invalidate(ctx, cache.Scope(string(credential)))

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.categoryID == categoryID {
		d.servicesLoad++
		d.categoryID = ""
		d.services.Replace(nil)
	}

	return nil
}

package dashboard

import (
	"context"
	"strings"

	"github.com/AsmaaWasel/Dashboard/apiclient"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/AsmaaWasel/Dashboard/table"
	"go.uber.org/zap"
)

// ServiceCell is a services table row as rendered, with the truncated description.
type ServiceCell struct {
	table.Record
	ShortDescription string `json:"short_description"`
}

type ServicesPage struct {
	TablePage[table.Record]
	Rows       []ServiceCell `json:"rows"`
	CategoryID string        `json:"category_id,omitempty"`
}

func (p ServicesPage) localized(l locale.Locale, translator *locale.Translator) ServicesPage {

	p.TablePage = p.TablePage.localized(l, translator)
	return p
}

func (d *Dashboard) Services() ServicesPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.servicesPageLocked()
}

func (d *Dashboard) servicesPageLocked() ServicesPage {

	page := newTablePage(d.services, d.locale, d.translator)

	cells := make([]ServiceCell, 0, len(page.PageView.Rows))
	for _, record := range page.PageView.Rows {
		cells = append(cells, ServiceCell{Record: record, ShortDescription: record.ShortDescription()})
	}

	return ServicesPage{TablePage: page, Rows: cells, CategoryID: d.categoryID}
}

// LoadServices replaces the table with the services of categoryID. The fetch runs
// without the lock; a load started later wins over this one.
func (d *Dashboard) LoadServices(ctx context.Context, credential apiclient.Credential, categoryID string) (ServicesPage, error) {

	d.mu.Lock()
	d.servicesLoad++
	load := d.servicesLoad
	d.mu.Unlock()

	services, err := d.backend.ListServices(ctx, credential, categoryID)
	if err != nil {
		return ServicesPage{}, err
	}

	records := make([]table.Record, 0, len(services))
	for i, service := range services {
		records = append(records, recordFromService(i+1, service))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if load == d.servicesLoad {
		d.services.Replace(records)
		d.services.SetPage(1)
		d.categoryID = categoryID
	}

	return d.servicesPageLocked(), nil
}

// SortServices cycles the sort on key, or drops the sort when key is empty.
func (d *Dashboard) SortServices(key table.Key) ServicesPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	if key == "" {
		d.services.ClearSort()
	} else {
		d.services.ToggleSort(key)
	}
	return d.servicesPageLocked()
}

func (d *Dashboard) SetServicesPage(page int) ServicesPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	d.services.SetPage(page)
	return d.servicesPageLocked()
}

func (d *Dashboard) NextServicesPage() ServicesPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	d.services.NextPage()
	return d.servicesPageLocked()
}

func (d *Dashboard) PrevServicesPage() ServicesPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	d.services.PrevPage()
	return d.servicesPageLocked()
}

func (d *Dashboard) SetServicesRowsPerPage(rowsPerPage int) (ServicesPage, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.services.SetRowsPerPage(rowsPerPage); err != nil {
		return ServicesPage{}, err
	}

	return d.servicesPageLocked(), nil
}

// AddService appends a validated service to the table. When a category is open
// and a credential is given, the service is also created on the API in the
// background and the row learns its remote id once that succeeds.
func (d *Dashboard) AddService(credential apiclient.Credential, form forms.ServiceForm) (table.Record, error) {

	if err := d.validate(&form); err != nil {
		return table.Record{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	record := d.services.Add(func(id int) table.Record {
		return table.Record{
			ID:          id,
			Title:       form.Title,
			Image:       imageOrPlaceholder(form.Image),
			Country:     form.Country,
			Phone:       form.Provider,
			Description: form.Description,
		}
	})

	if d.categoryID != "" && !credential.IsZero() {

		categoryID, load := d.categoryID, d.servicesLoad
		d.goLocked(func(ctx context.Context) {
			d.persistService(ctx, credential, categoryID, load, record.ID, form)
		})
	}

	return record, nil
}

func (d *Dashboard) persistService(ctx context.Context, credential apiclient.Credential, categoryID string, load uint64, rowID int, form forms.ServiceForm) {

	service, err := d.backend.CreateService(ctx, credential, categoryID, form)

	d.deliver(func() {

		if err != nil {
			logger.LogError(err, "Persisting service failed",
				zap.String("category_id", categoryID),
				zap.Int("row_id", rowID),
			)
			d.notice = errors.UserMessage(err)
			return
		}

		// the table was reloaded meanwhile, rowID may now name another row
		if load != d.servicesLoad {
			return
		}

		_, _ = d.services.Edit(rowID, func(record *table.Record) {
			record.RemoteID = service.ServiceID
		})
	})
}

// EditService overwrites the fields of row id with the non-empty fields of form.
// The id and remote id are kept.
func (d *Dashboard) EditService(id int, form forms.ServiceForm) (table.Record, error) {

	if err := d.validate(&form); err != nil {
		return table.Record{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.services.Edit(id, func(record *table.Record) {
		record.Title = mergeField(record.Title, form.Title)
		record.Image = mergeField(record.Image, form.Image)
		record.Country = mergeField(record.Country, form.Country)
		record.Phone = mergeField(record.Phone, form.Provider)
		record.Description = mergeField(record.Description, form.Description)
	})
}

func (d *Dashboard) DeleteService(id int) (table.Record, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.services.Delete(id)
}

func recordFromService(id int, service objects.Service) table.Record {

	return table.Record{
		ID:          id,
		Title:       service.Name,
		Image:       imageOrPlaceholder(service.Image),
		Country:     service.Country,
		Phone:       service.Provider,
		Description: service.Description,
		RemoteID:    service.ServiceID,
	}
}

func imageOrPlaceholder(image string) string {

	if strings.TrimSpace(image) == "" {
		return table.PlaceholderImage
	}

	return image
}

func mergeField(current, update string) string {

	if strings.TrimSpace(update) == "" {
		return current
	}

	return update
}

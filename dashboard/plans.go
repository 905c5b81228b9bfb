package dashboard

import (
	"context"

	"github.com/AsmaaWasel/Dashboard/apiclient"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/AsmaaWasel/Dashboard/table"
)

// Payment plan columns
const (
	KeyPlanName         table.Key = "name"
	KeyPlanPrice        table.Key = "price"
	KeyPlanBillingCycle table.Key = "billingCycle"
)

// PlanRow is one payment plan in the plans table.
type PlanRow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	BillingCycle string  `json:"billingCycle"`
	RemoteID     string  `json:"remote_id,omitempty"`
}

func (p PlanRow) RowID() int {
	return p.ID
}

func (p PlanRow) SortValue(key table.Key) any {

	switch key {
	case table.KeyID:
		return p.ID
	case KeyPlanName:
		return p.Name
	case KeyPlanPrice:
		return p.Price
	case KeyPlanBillingCycle:
		return p.BillingCycle
	default:
		return nil
	}
}

type PlansPage = TablePage[PlanRow]

func (d *Dashboard) Plans() PlansPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.plansPageLocked()
}

func (d *Dashboard) plansPageLocked() PlansPage {
	return newTablePage(d.plans, d.locale, d.translator)
}

// LoadPlans fetches the plans once, or again when refresh is set.
func (d *Dashboard) LoadPlans(ctx context.Context, credential apiclient.Credential, refresh bool) (PlansPage, error) {

	d.mu.Lock()
	if d.plansLoaded && !refresh {
		defer d.mu.Unlock()
		return d.plansPageLocked(), nil
	}
	d.plansLoad++
	load := d.plansLoad
	d.mu.Unlock()

	plans, err := d.backend.ListPlans(ctx, credential)
	if err != nil {
		return PlansPage{}, err
	}

	rows := make([]PlanRow, 0, len(plans))
	for i, plan := range plans {
		rows = append(rows, planRow(i+1, plan))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if load == d.plansLoad {
		d.plans.Replace(rows)
		d.plansLoaded = true
	}

	return d.plansPageLocked(), nil
}

// SortPlans cycles the sort on key, or drops the sort when key is empty.
func (d *Dashboard) SortPlans(key table.Key) PlansPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	if key == "" {
		d.plans.ClearSort()
	} else {
		d.plans.ToggleSort(key)
	}
	return d.plansPageLocked()
}

func (d *Dashboard) SetPlansPage(page int) PlansPage {

	d.mu.Lock()
	defer d.mu.Unlock()

	d.plans.SetPage(page)
	return d.plansPageLocked()
}

func (d *Dashboard) SetPlansRowsPerPage(rowsPerPage int) (PlansPage, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.plans.SetRowsPerPage(rowsPerPage); err != nil {
		return PlansPage{}, err
	}

	return d.plansPageLocked(), nil
}

func (d *Dashboard) CreatePlan(ctx context.Context, credential apiclient.Credential, form forms.PlanForm) (PlanRow, error) {

	if err := d.validate(&form); err != nil {
		return PlanRow{}, err
	}

	plan, err := d.backend.CreatePlan(ctx, credential, form)
	if err != nil {
		return PlanRow{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.plans.Add(func(id int) PlanRow {
		return planRow(id, plan)
	}), nil
}

func (d *Dashboard) UpdatePlan(ctx context.Context, credential apiclient.Credential, id int, form forms.PlanForm) (PlanRow, error) {

	if err := d.validate(&form); err != nil {
		return PlanRow{}, err
	}

	remoteID, err := d.planRemoteID(id)
	if err != nil {
		return PlanRow{}, err
	}

	plan, err := d.backend.UpdatePlan(ctx, credential, remoteID, form)
	if err != nil {
		return PlanRow{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	current, err := d.planByRemoteID(remoteID)
	if err != nil {
		return PlanRow{}, err
	}

	return d.plans.Edit(current.ID, func(row *PlanRow) {
		*row = planRow(current.ID, plan)
	})
}

func (d *Dashboard) DeletePlan(ctx context.Context, credential apiclient.Credential, id int) (PlanRow, error) {

	remoteID, err := d.planRemoteID(id)
	if err != nil {
		return PlanRow{}, err
	}

	if err := d.backend.DeletePlan(ctx, credential, remoteID); err != nil {
		return PlanRow{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	current, err := d.planByRemoteID(remoteID)
	if err != nil {
		return PlanRow{}, err
	}

	return d.plans.Delete(current.ID)
}

func (d *Dashboard) planRemoteID(id int) (string, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	row, ok := d.plans.Get(id)
	if !ok || row.RemoteID == "" {
		return "", errors.ObjectIDNotFoundError.New(id)
	}

	return row.RemoteID, nil
}

// planByRemoteID locates the row again after a backend call, since a refresh
// may have renumbered the table in between.
func (d *Dashboard) planByRemoteID(remoteID string) (PlanRow, error) {

	row, ok := d.plans.Find(func(row PlanRow) bool {
		return row.RemoteID == remoteID
	})
	if !ok {
		return PlanRow{}, errors.ObjectIDNotFoundError.New(remoteID)
	}

	return row, nil
}

func planRow(id int, plan objects.PaymentPlan) PlanRow {

	return PlanRow{
		ID:           id,
		Name:         plan.Name,
		Price:        plan.Price,
		BillingCycle: plan.BillingCycle,
		RemoteID:     plan.PlanID,
	}
}

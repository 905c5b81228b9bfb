package dashboard

import (
	"context"
	"sync"

	"github.com/AsmaaWasel/Dashboard/apiclient"
	"github.com/AsmaaWasel/Dashboard/cache"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/AsmaaWasel/Dashboard/table"
	"go.uber.org/zap"
)

// Backend is the admin API as seen by the dashboard. *apiclient.Client implements it.
type Backend interface {
	Login(ctx context.Context, form forms.LoginForm) (objects.LoginResult, error)

	ListCategories(ctx context.Context, credential apiclient.Credential) ([]objects.Category, error)
	CreateCategory(ctx context.Context, credential apiclient.Credential, form forms.CategoryForm) (objects.Category, error)
	UpdateCategory(ctx context.Context, credential apiclient.Credential, categoryID string, form forms.CategoryForm) (objects.Category, error)
	DeleteCategory(ctx context.Context, credential apiclient.Credential, categoryID string) error

	CreateService(ctx context.Context, credential apiclient.Credential, categoryID string, form forms.ServiceForm) (objects.Service, error)
	ListServices(ctx context.Context, credential apiclient.Credential, categoryID string) ([]objects.Service, error)

	ListPlans(ctx context.Context, credential apiclient.Credential) ([]objects.PaymentPlan, error)
	CreatePlan(ctx context.Context, credential apiclient.Credential, form forms.PlanForm) (objects.PaymentPlan, error)
	UpdatePlan(ctx context.Context, credential apiclient.Credential, planID string, form forms.PlanForm) (objects.PaymentPlan, error)
	DeletePlan(ctx context.Context, credential apiclient.Credential, planID string) error
}

const (
	SidebarExpanded  = "expanded"
	SidebarCollapsed = "collapsed"
)

type Options struct {
	// AdminUsername is the only account allowed past the login screen.
	AdminUsername string
	RowsPerPage   int
	Locale        locale.Locale
	// Cache is optional. Without it every sidebar render asks the API.
	Cache *cache.CategoryCache
}

// Dashboard is the state behind the admin screens. Every request is one event:
// it takes the lock, updates the state and renders from it. Service creation is
// persisted in the background and its outcome applied when it arrives.
type Dashboard struct {
	backend       Backend
	cache         *cache.CategoryCache
	translator    *locale.Translator
	locales       *locale.Provider
	adminUsername string

	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	unsubscribe func()

	mu              sync.Mutex
	closed          bool
	locale          locale.Locale
	services        *table.View[table.Record]
	categoryID      string
	servicesLoad    uint64
	plans           *table.View[PlanRow]
	plansLoaded     bool
	plansLoad       uint64
	sidebarExpanded bool
	notice          string
}

func New(backend Backend, translator *locale.Translator, opts Options) (*Dashboard, error) {

	rowsPerPage := opts.RowsPerPage
	if rowsPerPage == 0 {
		rowsPerPage = table.DefaultRowsPerPage
	}

	services, err := table.NewView[table.Record](nil, rowsPerPage)
	if err != nil {
		return nil, err
	}

	plans, err := table.NewView[PlanRow](nil, rowsPerPage)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	d := &Dashboard{
		backend:         backend,
		cache:           opts.Cache,
		translator:      translator,
		locales:         locale.NewProvider(opts.Locale),
		adminUsername:   opts.AdminUsername,
		ctx:             ctx,
		cancel:          cancel,
		services:        services,
		plans:           plans,
		sidebarExpanded: true,
	}

	d.locale = d.locales.Current()
	d.unsubscribe = d.locales.Subscribe(d.onLocaleChange)

	return d, nil
}

// Close cancels outstanding background requests and waits for them. Results that
// arrive afterwards are dropped.
func (d *Dashboard) Close() {

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
	d.unsubscribe()
}

func (d *Dashboard) onLocaleChange(l locale.Locale) {

	d.mu.Lock()
	d.locale = l
	d.mu.Unlock()

	logger.GetLogger().Debug("Dashboard locale changed", zap.String("locale", l.String()))
}

func (d *Dashboard) Locale() locale.Locale {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.locale
}

// SetLocale switches the language of every screen. The provider notifies the
// dashboard, so d.mu must not be held here.
func (d *Dashboard) SetLocale(l locale.Locale) Layout {

	d.locales.Set(l)
	return d.Layout()
}

func (d *Dashboard) validate(form any) error {
	return forms.Validate(form, d.Locale(), d.translator)
}

// goLocked runs fn in the background, bound to the dashboard lifetime.
// Callers hold d.mu.
func (d *Dashboard) goLocked(fn func(ctx context.Context)) {

	if d.closed {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		fn(d.ctx)
	}()
}

// deliver applies the outcome of a background request unless the dashboard was closed.
func (d *Dashboard) deliver(apply func()) {

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	apply()
}

// Login lets only the configured admin account in.
func (d *Dashboard) Login(ctx context.Context, form forms.LoginForm) (objects.LoginResult, error) {

	if err := d.validate(&form); err != nil {
		return objects.LoginResult{}, err
	}

	result, err := d.backend.Login(ctx, form)
	if err != nil {
		return objects.LoginResult{}, err
	}

	if result.User.Username != d.adminUsername {
		logger.GetLogger().Warn("Rejected dashboard login",
			zap.String("username", result.User.Username),
			zap.String("email", form.Email),
		)
		return objects.LoginResult{}, errors.UnauthorizedAccessError.New()
	}

	return result, nil
}

// Layout describes the page chrome in the current locale.
type Layout struct {
	Locale       locale.Locale        `json:"locale"`
	Direction    locale.TextDirection `json:"dir"`
	SidebarSide  locale.Side          `json:"sidebar_side"`
	SidebarState string               `json:"sidebar_state"`
	Chevrons     locale.Chevrons      `json:"chevrons"`
	Labels       map[string]string    `json:"labels"`
	Notice       string               `json:"notice,omitempty"`
}

var layoutLabels = []string{
	locale.MsgAdminTitle,
	locale.MsgCategories,
	locale.MsgAddCategory,
	locale.MsgLogout,
	locale.MsgAddService,
	locale.MsgAddNewService,
	locale.MsgEditService,
	locale.MsgShow,
	locale.MsgEntries,
}

// Layout renders the chrome and hands out the pending notice, which is shown once.
func (d *Dashboard) Layout() Layout {

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.layoutLocked()
}

func (d *Dashboard) ToggleSidebar() Layout {

	d.mu.Lock()
	defer d.mu.Unlock()

	d.sidebarExpanded = !d.sidebarExpanded
	return d.layoutLocked()
}

func (d *Dashboard) layoutLocked() Layout {

	state := SidebarCollapsed
	if d.sidebarExpanded {
		state = SidebarExpanded
	}

	notice := d.notice
	d.notice = ""

	return Layout{SidebarState: state, Notice: notice}.localized(d.locale, d.translator)
}

// localized renders the locale dependent parts of the chrome in l.
func (layout Layout) localized(l locale.Locale, translator *locale.Translator) Layout {

	labels := make(map[string]string, len(layoutLabels))
	for _, key := range layoutLabels {
		labels[key] = translator.Text(l, key)
	}

	layout.Locale = l
	layout.Direction = locale.Direction(l)
	layout.SidebarSide = locale.SidebarSide(l)
	layout.Chevrons = locale.ChevronsFor(l)
	layout.Labels = labels

	return layout
}

// TablePage is one rendered page of a table with its footer line.
type TablePage[R table.Row] struct {
	table.PageView[R]
	Footer    string               `json:"footer"`
	Direction locale.TextDirection `json:"dir"`
	Chevrons  locale.Chevrons      `json:"chevrons"`
}

func newTablePage[R table.Row](view *table.View[R], l locale.Locale, translator *locale.Translator) TablePage[R] {

	return TablePage[R]{PageView: view.Page()}.localized(l, translator)
}

func (p TablePage[R]) localized(l locale.Locale, translator *locale.Translator) TablePage[R] {

	p.Footer = translator.Footer(l, p.StartEntry, p.EndEntry, p.TotalEntries)
	p.Direction = locale.Direction(l)
	p.Chevrons = locale.ChevronsFor(l)

	return p
}

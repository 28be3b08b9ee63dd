package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/services"
	"subtrack/internal/types"
	"subtrack/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- test helpers ---

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func dataOf(t *testing.T, result map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object in response, got: %v", result)
	}
	return data
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertFieldError(t *testing.T, result map[string]interface{}, field string) {
	t.Helper()
	assertErrorCode(t, result, "VALIDATION_FAILED")
	fields, ok := result["errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected errors map in response, got: %v", result)
	}
	if _, ok := fields[field]; !ok {
		t.Errorf("expected error for field %q, got %v", field, fields)
	}
}

func date(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// --- mock audit service ---

type auditEntry struct {
	action     string
	resourceID string
	changes    map[string]interface{}
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (m *mockAuditService) Log(action, _, resourceID, _ string, changes map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{action: action, resourceID: resourceID, changes: changes})
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.action
	}
	return out
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- mock subscription service ---

type mockSubscriptionService struct {
	listFn    func(filter services.SubscriptionFilter) (*services.SubscriptionList, error)
	getFn     func(id string) (*services.SubscriptionDetail, error)
	createFn  func(input services.CreateSubscriptionInput) (*models.Subscription, error)
	updateFn  func(id string, input services.UpdateSubscriptionInput) (*models.Subscription, error)
	deleteFn  func(id string) error
	restoreFn func(id string) (*models.Subscription, error)
	setNextFn func(id string, d types.Date) (*models.Subscription, error)
	toggleFn  func(id string) (*models.Subscription, error)
	statsFn   func() (*services.SubscriptionStats, error)
}

func (m *mockSubscriptionService) ListSubscriptions(filter services.SubscriptionFilter) (*services.SubscriptionList, error) {
	if m.listFn != nil {
		return m.listFn(filter)
	}
	return &services.SubscriptionList{Subscriptions: []models.Subscription{}}, nil
}

func (m *mockSubscriptionService) GetSubscription(id string) (*services.SubscriptionDetail, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &services.SubscriptionDetail{Subscription: &models.Subscription{Base: models.Base{ID: id}}}, nil
}

func (m *mockSubscriptionService) GetSubscriptionByID(id string) (*models.Subscription, error) {
	return &models.Subscription{Base: models.Base{ID: id}}, nil
}

func (m *mockSubscriptionService) CreateSubscription(input services.CreateSubscriptionInput) (*models.Subscription, error) {
	if m.createFn != nil {
		return m.createFn(input)
	}
	return &models.Subscription{}, nil
}

func (m *mockSubscriptionService) UpdateSubscription(id string, input services.UpdateSubscriptionInput) (*models.Subscription, error) {
	if m.updateFn != nil {
		return m.updateFn(id, input)
	}
	return &models.Subscription{Base: models.Base{ID: id}}, nil
}

func (m *mockSubscriptionService) DeleteSubscription(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockSubscriptionService) RestoreSubscription(id string) (*models.Subscription, error) {
	if m.restoreFn != nil {
		return m.restoreFn(id)
	}
	return &models.Subscription{Base: models.Base{ID: id}}, nil
}

func (m *mockSubscriptionService) SetNextPayment(id string, d types.Date) (*models.Subscription, error) {
	if m.setNextFn != nil {
		return m.setNextFn(id, d)
	}
	return &models.Subscription{Base: models.Base{ID: id}, NextPaymentDate: d}, nil
}

func (m *mockSubscriptionService) ToggleStatus(id string) (*models.Subscription, error) {
	if m.toggleFn != nil {
		return m.toggleFn(id)
	}
	return &models.Subscription{Base: models.Base{ID: id}, Status: models.SubscriptionStatusPaused}, nil
}

func (m *mockSubscriptionService) GetStats() (*services.SubscriptionStats, error) {
	if m.statsFn != nil {
		return m.statsFn()
	}
	return &services.SubscriptionStats{}, nil
}

var _ services.SubscriptionServicer = (*mockSubscriptionService)(nil)

// --- mock category service ---

type mockCategoryService struct {
	createFn func(name, color string, budgetLimit *decimal.Decimal) (*models.Category, error)
	listFn   func() ([]models.Category, error)
	getFn    func(id string) (*models.Category, error)
	updateFn func(id, name, color string, budgetLimit *decimal.Decimal) (*models.Category, error)
	deleteFn func(id string) error
}

func (m *mockCategoryService) CreateCategory(name, color string, budgetLimit *decimal.Decimal) (*models.Category, error) {
	if m.createFn != nil {
		return m.createFn(name, color, budgetLimit)
	}
	return &models.Category{Name: name, Color: color, BudgetLimit: budgetLimit}, nil
}

func (m *mockCategoryService) ListCategories() ([]models.Category, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(id string) (*models.Category, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Category{Base: models.Base{ID: id}}, nil
}

func (m *mockCategoryService) UpdateCategory(id, name, color string, budgetLimit *decimal.Decimal) (*models.Category, error) {
	if m.updateFn != nil {
		return m.updateFn(id, name, color, budgetLimit)
	}
	return &models.Category{Base: models.Base{ID: id}, Name: name, Color: color, BudgetLimit: budgetLimit}, nil
}

func (m *mockCategoryService) DeleteCategory(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- mock preference service ---

type mockPreferenceService struct {
	pref     models.UserPreference
	updateFn func(input services.PreferenceInput) (*models.UserPreference, error)
}

func (m *mockPreferenceService) GetPreferences() (*models.UserPreference, error) {
	p := m.pref
	return &p, nil
}

func (m *mockPreferenceService) UpdatePreferences(input services.PreferenceInput) (*models.UserPreference, error) {
	if m.updateFn != nil {
		return m.updateFn(input)
	}
	p := m.pref
	return &p, nil
}

func (m *mockPreferenceService) SetMonthlyBudget(amount decimal.Decimal) (*models.UserPreference, error) {
	p := m.pref
	p.MonthlyBudget = amount
	return &p, nil
}

var _ services.PreferenceServicer = (*mockPreferenceService)(nil)

// --- mock budget service ---

type mockBudgetService struct {
	overviewFn     func(year int, month time.Month) (*services.BudgetOverview, error)
	upsertFn       func(input services.UpsertBudgetInput) (*models.Budget, error)
	listBudgetsFn  func(year int, month *int) ([]models.Budget, error)
	deleteBudgetFn func(id string) error
	transactionsFn func(query services.BudgetTransactionQuery) (*services.BudgetTransactions, error)
	analyticsFn    func(start, end types.Date) (*services.BudgetAnalytics, error)
}

func (m *mockBudgetService) GetOverview(year int, month time.Month) (*services.BudgetOverview, error) {
	if m.overviewFn != nil {
		return m.overviewFn(year, month)
	}
	return &services.BudgetOverview{}, nil
}

func (m *mockBudgetService) UpsertBudget(input services.UpsertBudgetInput) (*models.Budget, error) {
	if m.upsertFn != nil {
		return m.upsertFn(input)
	}
	return &models.Budget{LimitAmount: input.LimitAmount, Period: input.Period}, nil
}

func (m *mockBudgetService) ListBudgets(year int, month *int) ([]models.Budget, error) {
	if m.listBudgetsFn != nil {
		return m.listBudgetsFn(year, month)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) DeleteBudget(id string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(id)
	}
	return nil
}

func (m *mockBudgetService) SetMonthlyBudget(amount decimal.Decimal) (*models.UserPreference, error) {
	return &models.UserPreference{MonthlyBudget: amount}, nil
}

func (m *mockBudgetService) ListCategories() ([]services.CategoryOption, error) {
	return []services.CategoryOption{}, nil
}

func (m *mockBudgetService) ListTransactions(query services.BudgetTransactionQuery) (*services.BudgetTransactions, error) {
	if m.transactionsFn != nil {
		return m.transactionsFn(query)
	}
	page := pagination.NewPageResponse([]models.Transaction{}, 1, pagination.DefaultPerPage, 0)
	return &services.BudgetTransactions{Page: &page}, nil
}

func (m *mockBudgetService) GetAnalytics(start, end types.Date) (*services.BudgetAnalytics, error) {
	if m.analyticsFn != nil {
		return m.analyticsFn(start, end)
	}
	return &services.BudgetAnalytics{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

// --- mock transaction service ---

type mockTransactionService struct {
	listFn func(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getFn  func(id string) (*models.Transaction, error)
}

func (m *mockTransactionService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, pagination.DefaultPerPage, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) RecentTransactions(string, int) ([]models.Transaction, error) {
	return nil, nil
}

func (m *mockTransactionService) SumAmount(services.TransactionFilter) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *mockTransactionService) CountTransactions(services.TransactionFilter) (int64, error) {
	return 0, nil
}

func (m *mockTransactionService) MostExpensive(services.TransactionFilter) (*models.Transaction, error) {
	return nil, nil
}

func (m *mockTransactionService) TotalsByCategory(services.TransactionFilter) ([]services.CategoryTotal, error) {
	return nil, nil
}

func (m *mockTransactionService) DailyTotals(services.TransactionFilter) ([]services.DailyTotal, error) {
	return nil, nil
}

func (m *mockTransactionService) ExistsForDate(*gorm.DB, string, types.Date) (bool, error) {
	return false, nil
}

func (m *mockTransactionService) CreateInTx(*gorm.DB, *models.Transaction) error {
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock dashboard service ---

type mockDashboardService struct {
	summaryFn func(period string) (*services.PeriodSummary, error)
}

func (m *mockDashboardService) GetOverview() (*services.DashboardOverview, error) {
	return &services.DashboardOverview{Currency: "USD"}, nil
}

func (m *mockDashboardService) GetNotifications() ([]services.Notification, error) {
	return []services.Notification{{Type: "warning", Title: "Budget exceeded"}}, nil
}

func (m *mockDashboardService) GetSummary(period string) (*services.PeriodSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(period)
	}
	return &services.PeriodSummary{Period: period}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

// --- mock dispatcher ---

type mockDispatcher struct {
	mu   sync.Mutex
	reqs []services.GenerateRequest
	err  error
}

func (m *mockDispatcher) Dispatch(req services.GenerateRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.reqs = append(m.reqs, req)
	return nil
}

var _ Dispatcher = (*mockDispatcher)(nil)

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/restaurant-backoffice/internal/database/dbtest"
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/handler"
	"github.com/restaurant-backoffice/internal/repository"
	"github.com/restaurant-backoffice/internal/service"
	"github.com/shopspring/decimal"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 10, 18, 45, 0, 0, time.UTC)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testServer struct {
	server *httptest.Server
}

func setupTestServer(tb testing.TB) *testServer {
	tb.Helper()

	db := dbtest.New(tb)
	logger := newLogger()

	customerRepo := repository.NewCustomerRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db, domain.DefaultTaxRate)

	router := handler.NewRouter(handler.Handlers{
		Orders:    handler.NewOrderHandler(service.NewOrderService(orderRepo, empRepo, customerRepo, tableRepo, fixedClock, logger), logger),
		Customers: handler.NewCustomerHandler(service.NewCustomerService(customerRepo), logger),
		Staff:     handler.NewStaffHandler(service.NewEmployeeService(empRepo), service.NewShiftService(repository.NewShiftRepository(db), empRepo), logger),
		Floor:     handler.NewFloorHandler(service.NewTableService(tableRepo), service.NewReservationService(reservationRepo, customerRepo, tableRepo, fixedClock, logger), logger),
		Menu:      handler.NewMenuHandler(service.NewMenuService(repository.NewMenuRepository(db)), logger),
		Reports:   handler.NewReportHandler(service.NewReportService(repository.NewReportRepository(db), fixedClock), logger),
	}, logger)

	return &testServer{server: httptest.NewServer(router.Setup())}
}

func (ts *testServer) Close() {
	ts.server.Close()
}

func (ts *testServer) url(path string) string {
	return ts.server.URL + path
}

func postJSON(url string, body map[string]any) (*http.Response, error) {
	data, _ := json.Marshal(body)
	return http.Post(url, "application/json", bytes.NewBuffer(data))
}

func patchJSON(url string, body map[string]any) (*http.Response, error) {
	data, _ := json.Marshal(body)
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

func deleteRequest(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return nil, err
	}
	return http.DefaultClient.Do(req)
}

// mustPost создаёт запись и возвращает её id
func mustPost(t testing.TB, url string, body map[string]any) int64 {
	t.Helper()
	resp, err := postJSON(url, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var errResp dto.ErrorResponse
		json.NewDecoder(resp.Body).Decode(&errResp)
		t.Fatalf("POST %s: expected %d, got %d (%s %s)", url, http.StatusCreated, resp.StatusCode, errResp.Error, errResp.Message)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	json.NewDecoder(resp.Body).Decode(&created)
	return created.ID
}

func expectStatus(t *testing.T, resp *http.Response, err error, want int) {
	t.Helper()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != want {
		t.Errorf("expected %d, got %d", want, resp.StatusCode)
	}
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

// seed - связанные записи, нужные для заказа в зале
type seed struct {
	employeeID int64
	tableID    int64
	categoryID int64
	steakID    int64
	saladID    int64
}

func (ts *testServer) seed(t testing.TB) seed {
	t.Helper()
	var s seed
	s.employeeID = mustPost(t, ts.url("/employees"), map[string]any{
		"first_name":  "Sam",
		"last_name":   "Rivera",
		"role":        "Server",
		"hire_date":   "2023-03-01",
		"hourly_wage": "18.50",
	})
	s.tableID = mustPost(t, ts.url("/tables"), map[string]any{
		"table_number": "T01",
		"capacity":     4,
		"location":     "Main Dining",
	})
	s.categoryID = mustPost(t, ts.url("/categories"), map[string]any{"name": "Mains"})
	s.steakID = mustPost(t, ts.url("/menu-items"), map[string]any{
		"name":        "Ribeye",
		"price":       "42.99",
		"category_id": s.categoryID,
	})
	s.saladID = mustPost(t, ts.url("/menu-items"), map[string]any{
		"name":        "Caesar Salad",
		"price":       12.50,
		"category_id": s.categoryID,
	})
	return s
}

func (ts *testServer) openOrder(t testing.TB, s seed) int64 {
	t.Helper()
	return mustPost(t, ts.url("/orders"), map[string]any{
		"employee_id": s.employeeID,
		"table_id":    s.tableID,
		"order_type":  "Dine-In",
	})
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.url("/health"))
	expectStatus(t, resp, err, http.StatusOK)
}

func TestCreateOrder_Success(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)

	resp, err := postJSON(ts.url("/orders"), map[string]any{
		"employee_id": s.employeeID,
		"table_id":    s.tableID,
		"order_type":  "Dine-In",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	order := decodeBody[dto.OrderResponse](t, resp)
	if order.Status != domain.OrderOpen || order.Total != "0.00" {
		t.Errorf("unexpected new order %+v", order)
	}
	if order.OrderDate != "2024-05-10" || order.OrderTime != "18:45" {
		t.Errorf("expected order to be stamped with the clock, got %s %s", order.OrderDate, order.OrderTime)
	}
}

func TestCreateOrder_Rejected(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing order type", map[string]any{"employee_id": s.employeeID}, http.StatusBadRequest},
		{"unknown order type", map[string]any{"employee_id": s.employeeID, "order_type": "Drive-Thru"}, http.StatusBadRequest},
		{"dine-in without table", map[string]any{"employee_id": s.employeeID, "order_type": "Dine-In"}, http.StatusBadRequest},
		{"unknown employee", map[string]any{"employee_id": 999, "order_type": "Bar"}, http.StatusNotFound},
		{"unknown table", map[string]any{"employee_id": s.employeeID, "order_type": "Dine-In", "table_id": 999}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := postJSON(ts.url("/orders"), tt.body)
			expectStatus(t, resp, err, tt.want)
		})
	}
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Post(ts.url("/orders"), "application/json", bytes.NewBufferString("{invalid"))
	expectStatus(t, resp, err, http.StatusBadRequest)
}

func TestGetOrder_NotFoundAndInvalidID(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.url("/orders/999"))
	expectStatus(t, resp, err, http.StatusNotFound)

	resp, err = http.Get(ts.url("/orders/abc"))
	expectStatus(t, resp, err, http.StatusBadRequest)

	resp, err = http.Get(ts.url("/orders/0/totals"))
	expectStatus(t, resp, err, http.StatusBadRequest)
}

func TestOrderItems_TotalsFollowEveryChange(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)
	orderID := ts.openOrder(t, s)
	itemsURL := ts.url(fmt.Sprintf("/orders/%d/items", orderID))

	resp, err := postJSON(itemsURL, map[string]any{"item_id": s.steakID, "quantity": 2})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	added := decodeBody[dto.OrderItemMutationResponse](t, resp)
	if added.Item == nil || added.Item.UnitPrice != "42.99" || added.Item.LineTotal != "85.98" {
		t.Errorf("unexpected item %+v", added.Item)
	}
	steakLineID := added.Item.ID

	mustPost(t, itemsURL, map[string]any{"item_id": s.saladID, "quantity": 1})

	resp, err = patchJSON(ts.url(fmt.Sprintf("/orders/%d/tip", orderID)), map[string]any{"tip": "7.00"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	totals := decodeBody[dto.TotalsResponse](t, resp)
	want := dto.TotalsResponse{OrderID: orderID, Subtotal: "98.48", Tax: "8.12", Tip: "7.00", Total: "113.60"}
	if totals != want {
		t.Errorf("expected %+v, got %+v", want, totals)
	}

	resp, err = patchJSON(ts.url(fmt.Sprintf("/order-items/%d", steakLineID)), map[string]any{"quantity": 3})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	updated := decodeBody[dto.OrderItemMutationResponse](t, resp)
	if updated.Item == nil || updated.Item.Quantity != 3 {
		t.Errorf("unexpected item after update %+v", updated.Item)
	}
	if updated.Totals.Total != "160.14" {
		t.Errorf("expected total 160.14, got %s", updated.Totals.Total)
	}

	resp, err = deleteRequest(ts.url(fmt.Sprintf("/order-items/%d", steakLineID)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	removed := decodeBody[dto.OrderItemMutationResponse](t, resp)
	if removed.Totals.Subtotal != "12.50" || removed.Totals.Total != "20.53" {
		t.Errorf("unexpected totals after remove %+v", removed.Totals)
	}

	resp, err = http.Get(ts.url(fmt.Sprintf("/orders/%d/totals", orderID)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if stored := decodeBody[dto.TotalsResponse](t, resp); stored != removed.Totals {
		t.Errorf("stored totals %+v differ from last mutation %+v", stored, removed.Totals)
	}

	resp, err = postJSON(ts.url(fmt.Sprintf("/orders/%d/recalculate", orderID)), map[string]any{})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if recalculated := decodeBody[dto.TotalsResponse](t, resp); recalculated != removed.Totals {
		t.Errorf("recalculation changed consistent totals: %+v", recalculated)
	}
}

func TestOrderItems_Rejected(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)
	orderID := ts.openOrder(t, s)
	itemsURL := ts.url(fmt.Sprintf("/orders/%d/items", orderID))

	tests := []struct {
		name string
		url  string
		body map[string]any
		want int
	}{
		{"zero quantity", itemsURL, map[string]any{"item_id": s.steakID, "quantity": 0}, http.StatusBadRequest},
		{"negative price", itemsURL, map[string]any{"item_id": s.steakID, "quantity": 1, "unit_price": "-1"}, http.StatusBadRequest},
		{"quantity above limit", itemsURL, map[string]any{"item_id": s.steakID, "quantity": 1001}, http.StatusBadRequest},
		{"totals out of range", itemsURL, map[string]any{"item_id": s.steakID, "quantity": 1000, "unit_price": "99999999.99"}, http.StatusBadRequest},
		{"unknown menu item", itemsURL, map[string]any{"item_id": 999, "quantity": 1}, http.StatusNotFound},
		{"unknown order", ts.url("/orders/999/items"), map[string]any{"item_id": s.steakID, "quantity": 1}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := postJSON(tt.url, tt.body)
			expectStatus(t, resp, err, tt.want)
		})
	}

	resp, err := patchJSON(ts.url(fmt.Sprintf("/orders/%d/tip", orderID)), map[string]any{"tip": "-5"})
	expectStatus(t, resp, err, http.StatusBadRequest)

	resp, err = patchJSON(ts.url("/order-items/999"), map[string]any{"quantity": 2})
	expectStatus(t, resp, err, http.StatusNotFound)
}

func TestOrderStatus_ClosedOrderRejectsChanges(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)
	orderID := ts.openOrder(t, s)

	resp, err := patchJSON(ts.url(fmt.Sprintf("/orders/%d/status", orderID)), map[string]any{"status": "Completed"})
	expectStatus(t, resp, err, http.StatusOK)

	resp, err = postJSON(ts.url(fmt.Sprintf("/orders/%d/items", orderID)), map[string]any{"item_id": s.steakID, "quantity": 1})
	expectStatus(t, resp, err, http.StatusConflict)

	resp, err = patchJSON(ts.url(fmt.Sprintf("/orders/%d/status", orderID)), map[string]any{"status": "Open"})
	expectStatus(t, resp, err, http.StatusConflict)

	resp, err = patchJSON(ts.url(fmt.Sprintf("/orders/%d/status", orderID)), map[string]any{"status": "Paid"})
	expectStatus(t, resp, err, http.StatusBadRequest)
}

func TestDeleteOrder_CascadesItems(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)
	orderID := ts.openOrder(t, s)
	mustPost(t, ts.url(fmt.Sprintf("/orders/%d/items", orderID)), map[string]any{"item_id": s.steakID, "quantity": 1})

	// Позиция меню занята заказом
	resp, err := deleteRequest(ts.url(fmt.Sprintf("/menu-items/%d", s.steakID)))
	expectStatus(t, resp, err, http.StatusConflict)

	resp, err = deleteRequest(ts.url(fmt.Sprintf("/orders/%d", orderID)))
	expectStatus(t, resp, err, http.StatusNoContent)

	resp, err = http.Get(ts.url("/status"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	status := decodeBody[dto.StatusResponse](t, resp)
	if status.Counts["orders"] != 0 || status.Counts["order_items"] != 0 {
		t.Errorf("expected order and its items to be gone, got %v", status.Counts)
	}

	resp, err = deleteRequest(ts.url(fmt.Sprintf("/menu-items/%d", s.steakID)))
	expectStatus(t, resp, err, http.StatusNoContent)
}

func TestEmployees_ManagerAndRestrictedDelete(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)
	ts.openOrder(t, s)

	bossID := mustPost(t, ts.url("/employees"), map[string]any{
		"first_name": "Mia", "last_name": "Stone", "role": "Manager", "hire_date": "2020-01-01", "hourly_wage": "30",
	})

	resp, err := patchJSON(ts.url(fmt.Sprintf("/employees/%d/manager", s.employeeID)), map[string]any{"manager_id": bossID})
	expectStatus(t, resp, err, http.StatusOK)

	resp, err = patchJSON(ts.url(fmt.Sprintf("/employees/%d/manager", bossID)), map[string]any{"manager_id": s.employeeID})
	expectStatus(t, resp, err, http.StatusConflict)

	resp, err = patchJSON(ts.url(fmt.Sprintf("/employees/%d/manager", bossID)), map[string]any{"manager_id": bossID})
	expectStatus(t, resp, err, http.StatusBadRequest)

	resp, err = http.Get(ts.url(fmt.Sprintf("/employees/%d/subordinates", bossID)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	subordinates := decodeBody[[]dto.EmployeeResponse](t, resp)
	if len(subordinates) != 1 || subordinates[0].ID != s.employeeID {
		t.Errorf("unexpected subordinates %+v", subordinates)
	}

	resp, err = deleteRequest(ts.url(fmt.Sprintf("/employees/%d", s.employeeID)))
	expectStatus(t, resp, err, http.StatusConflict)

	resp, err = deleteRequest(ts.url(fmt.Sprintf("/employees/%d", bossID)))
	expectStatus(t, resp, err, http.StatusNoContent)
}

func TestShifts(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)

	resp, err := postJSON(ts.url("/shifts"), map[string]any{
		"employee_id": s.employeeID, "shift_date": "2024-05-11", "start_time": "18:00", "end_time": "10:00",
	})
	expectStatus(t, resp, err, http.StatusBadRequest)

	shiftID := mustPost(t, ts.url("/shifts"), map[string]any{
		"employee_id": s.employeeID, "shift_date": "2024-05-11", "start_time": "10:00", "end_time": "18:00",
	})

	resp, err = http.Get(ts.url(fmt.Sprintf("/employees/%d/shifts", s.employeeID)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if shifts := decodeBody[[]dto.ShiftResponse](t, resp); len(shifts) != 1 || shifts[0].ID != shiftID {
		t.Errorf("unexpected shifts %+v", shifts)
	}

	resp, err = deleteRequest(ts.url(fmt.Sprintf("/shifts/%d", shiftID)))
	expectStatus(t, resp, err, http.StatusNoContent)
}

func TestReservationsAndAvailability(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)

	customerID := mustPost(t, ts.url("/customers"), map[string]any{
		"first_name": "Dana", "last_name": "Wells", "email": "dana@example.com",
	})

	resp, err := postJSON(ts.url("/customers"), map[string]any{
		"first_name": "Dee", "last_name": "Wells", "email": "dana@example.com",
	})
	expectStatus(t, resp, err, http.StatusConflict)

	reservation := map[string]any{
		"customer_id":      customerID,
		"table_id":         s.tableID,
		"reservation_date": "2024-05-12",
		"reservation_time": "19:00",
		"party_size":       6,
	}
	reservationID := mustPost(t, ts.url("/reservations"), reservation)

	reservation["reservation_time"] = "19:30"
	resp, err = postJSON(ts.url("/reservations"), reservation)
	expectStatus(t, resp, err, http.StatusConflict)

	reservation["reservation_date"] = "2024-05-01"
	resp, err = postJSON(ts.url("/reservations"), reservation)
	expectStatus(t, resp, err, http.StatusBadRequest)

	resp, err = http.Get(ts.url("/tables/available?date=2024-05-12&time=19:30"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if tables := decodeBody[[]dto.TableResponse](t, resp); len(tables) != 0 {
		t.Errorf("expected no free tables, got %+v", tables)
	}

	resp, err = http.Get(ts.url("/tables/available?date=2024-05-12"))
	expectStatus(t, resp, err, http.StatusBadRequest)

	resp, err = http.Get(ts.url("/reports/overbooked"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if rows := decodeBody[[]dto.OverbookedResponse](t, resp); len(rows) != 1 {
		t.Errorf("expected the party of six to be flagged, got %+v", rows)
	}

	resp, err = patchJSON(ts.url(fmt.Sprintf("/reservations/%d/status", reservationID)), map[string]any{"status": "Cancelled"})
	expectStatus(t, resp, err, http.StatusOK)

	resp, err = http.Get(ts.url("/tables/available?date=2024-05-12&time=19:30"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if tables := decodeBody[[]dto.TableResponse](t, resp); len(tables) != 1 {
		t.Errorf("expected cancelled reservation to free the table, got %+v", tables)
	}

	resp, err = http.Get(ts.url("/reservations"))
	expectStatus(t, resp, err, http.StatusBadRequest)
}

func TestReports_QueryValidation(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	tests := []struct {
		path string
		want int
	}{
		{"/reports/daily", http.StatusOK},
		{"/reports/daily?days=0", http.StatusBadRequest},
		{"/reports/daily?days=abc", http.StatusBadRequest},
		{"/reports/popular?limit=5", http.StatusOK},
		{"/reports/popular?limit=500", http.StatusBadRequest},
		{"/reports/orders?from=2024-05-01&to=2024-05-31", http.StatusOK},
		{"/reports/orders?from=2024-05-31&to=2024-05-01", http.StatusBadRequest},
		{"/reports/orders?from=2024-05-01", http.StatusBadRequest},
		{"/reports/categories", http.StatusOK},
		{"/reports/servers", http.StatusOK},
		{"/reports/customers", http.StatusOK},
		{"/reports/upcoming", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.url(tt.path))
			expectStatus(t, resp, err, tt.want)
		})
	}
}

// conflictingOrders имитирует заказ, который дважды подряд проиграл параллельной транзакции
type conflictingOrders struct {
	service.OrderService
}

func (conflictingOrders) SetTip(ctx context.Context, orderID int64, tip decimal.Decimal) (*domain.Order, error) {
	return nil, fmt.Errorf("%w: database is locked", domain.ErrConcurrentUpdate)
}

func TestSetTip_ConcurrentUpdateIsRetryable(t *testing.T) {
	logger := newLogger()
	router := handler.NewRouter(handler.Handlers{
		Orders: handler.NewOrderHandler(conflictingOrders{}, logger),
	}, logger)
	server := httptest.NewServer(router.Setup())
	defer server.Close()

	resp, err := patchJSON(server.URL+"/orders/1/tip", map[string]any{"tip": "2.00"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected %d, got %d", http.StatusServiceUnavailable, resp.StatusCode)
	}
	errResp := decodeBody[dto.ErrorResponse](t, resp)
	if errResp.Error != domain.ErrConcurrentUpdate.Error() {
		t.Errorf("unexpected error body %+v", errResp)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPut, ts.url("/orders/1"), nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	expectStatus(t, resp, err, http.StatusMethodNotAllowed)
}

func TestFullWorkflow(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()
	s := ts.seed(t)

	customerID := mustPost(t, ts.url("/customers"), map[string]any{
		"first_name": "Ann", "last_name": "Lee", "email": "ann@example.com",
	})

	orderID := mustPost(t, ts.url("/orders"), map[string]any{
		"employee_id": s.employeeID,
		"customer_id": customerID,
		"table_id":    s.tableID,
		"order_type":  "Dine-In",
	})
	mustPost(t, ts.url(fmt.Sprintf("/orders/%d/items", orderID)), map[string]any{"item_id": s.steakID, "quantity": 2})
	mustPost(t, ts.url(fmt.Sprintf("/orders/%d/items", orderID)), map[string]any{"item_id": s.saladID, "quantity": 1})

	resp, _ := patchJSON(ts.url(fmt.Sprintf("/orders/%d/tip", orderID)), map[string]any{"tip": "7.00"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed to set tip")
	}
	resp.Body.Close()

	resp, _ = patchJSON(ts.url(fmt.Sprintf("/orders/%d/status", orderID)), map[string]any{"status": "In Progress"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed to start order")
	}
	resp.Body.Close()

	resp, _ = patchJSON(ts.url(fmt.Sprintf("/orders/%d/status", orderID)), map[string]any{"status": "Completed"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed to complete order")
	}
	resp.Body.Close()

	resp, _ = http.Get(ts.url("/reports/daily?days=7"))
	daily := decodeBody[[]dto.DailyRevenueResponse](t, resp)
	if len(daily) != 1 || daily[0].Total != "113.60" {
		t.Fatalf("unexpected daily revenue %+v", daily)
	}

	resp, _ = http.Get(ts.url("/reports/popular?limit=1"))
	popular := decodeBody[[]dto.PopularItemResponse](t, resp)
	if len(popular) != 1 || popular[0].ItemID != s.steakID {
		t.Fatalf("unexpected popular items %+v", popular)
	}

	resp, _ = http.Get(ts.url("/orders?status=Completed&date=2024-05-10"))
	orders := decodeBody[[]dto.OrderResponse](t, resp)
	if len(orders) != 1 || orders[0].Total != "113.60" {
		t.Fatalf("unexpected orders %+v", orders)
	}

	resp, _ = deleteRequest(ts.url(fmt.Sprintf("/customers/%d", customerID)))
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("failed to delete customer")
	}
	resp.Body.Close()

	t.Log("Full workflow completed successfully")
}

func BenchmarkAddOrderItem(b *testing.B) {
	ts := setupTestServer(b)
	defer ts.Close()
	s := ts.seed(b)
	orderID := ts.openOrder(b, s)
	url := ts.url("/orders/" + strconv.FormatInt(orderID, 10) + "/items")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		body, _ := json.Marshal(map[string]any{"item_id": s.saladID, "quantity": 1 + i%3})
		resp, _ := http.Post(url, "application/json", bytes.NewBuffer(body))
		resp.Body.Close()
	}
}

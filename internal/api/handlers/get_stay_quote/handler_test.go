package get_stay_quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/api/handlers"
	"github.com/staysuite/pricing-service/internal/pricing"
	getStayQuote "github.com/staysuite/pricing-service/internal/usecase/get_stay_quote"
)

type fakeUseCase struct {
	gotReq *getStayQuote.Request

	resp *getStayQuote.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getStayQuote.Request) (*getStayQuote.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	router := mux.NewRouter()
	handler := NewHandler(uc, nopLogger{})
	router.HandleFunc("/api/v1/tenants/{tenantId}/rooms/{roomId}/quote", handler.Handle).
		Methods(http.MethodGet)
	return router
}

func quoteResponse() *getStayQuote.Response {
	rateName := "Высокий сезон"
	return &getStayQuote.Response{
		RoomID:   101,
		RoomName: "Видовой люкс",
		Nights: []pricing.NightLine{
			{Date: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), Price: 1000},
			{Date: time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC), Price: 1500, RateName: &rateName},
		},
		Subtotal:   2500,
		Currency:   "EUR",
		NightCount: 2,
		Source:     "full",
	}
}

func TestHandleReturnsQuote(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{resp: quoteResponse()}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/tenants/1/rooms/101/quote?checkIn=2026-07-10&checkOut=2026-07-12&adults=2&children=1&childrenAges=4", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	require.Equal(t, int64(1), uc.gotReq.TenantID)
	require.Equal(t, int64(101), uc.gotReq.RoomID)
	require.Equal(t, 2, uc.gotReq.Adults)
	require.Equal(t, 1, uc.gotReq.Children)
	require.Equal(t, []int{4}, uc.gotReq.ChildrenAges)
	require.Equal(t, "2026-07-10", uc.gotReq.CheckIn.Format("2006-01-02"))

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(101), resp.RoomID)
	require.Equal(t, "full", resp.Source)
	require.Len(t, resp.Nights, 2)
	require.Equal(t, "2026-07-10", resp.Nights[0].Date)
	require.Nil(t, resp.Nights[0].RateName)
	require.NotNil(t, resp.Nights[1].RateName)
	require.Equal(t, 2500.0, resp.Subtotal)
}

func TestHandleDefaultsGuestCounts(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{resp: quoteResponse()}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/tenants/1/rooms/101/quote?checkIn=2026-07-10&checkOut=2026-07-12", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, uc.gotReq.Adults)
	require.Equal(t, 0, uc.gotReq.Children)
	require.Nil(t, uc.gotReq.ChildrenAges)
}

func TestHandleRejectsBadParams(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing dates":    "/api/v1/tenants/1/rooms/101/quote",
		"malformed date":   "/api/v1/tenants/1/rooms/101/quote?checkIn=2026-13-40&checkOut=2026-07-12",
		"bad room id":      "/api/v1/tenants/1/rooms/garden/quote?checkIn=2026-07-10&checkOut=2026-07-12",
		"bad adults":       "/api/v1/tenants/1/rooms/101/quote?checkIn=2026-07-10&checkOut=2026-07-12&adults=two",
		"bad childrenAges": "/api/v1/tenants/1/rooms/101/quote?checkIn=2026-07-10&checkOut=2026-07-12&childrenAges=4,x",
	}

	for name, target := range tests {
		target := target
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			uc := &fakeUseCase{resp: quoteResponse()}
			router := newTestRouter(uc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			// Запрос не должен дойти до use case
			require.Nil(t, uc.gotReq)
		})
	}
}

func TestHandleMapsUseCaseErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err        error
		wantStatus int
	}{
		"room not found": {err: getStayQuote.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		"room inactive":  {err: getStayQuote.ErrRoomInactive, wantStatus: http.StatusConflict},
		"bad range":      {err: getStayQuote.ErrInvalidDateRange, wantStatus: http.StatusBadRequest},
		"too long":       {err: getStayQuote.ErrStayTooLong, wantStatus: http.StatusBadRequest},
		"too many":       {err: getStayQuote.ErrTooManyGuests, wantStatus: http.StatusBadRequest},
		"internal":       {err: errors.New("storage exploded"), wantStatus: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			uc := &fakeUseCase{err: tc.err}
			router := newTestRouter(uc)

			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/tenants/1/rooms/101/quote?checkIn=2026-07-10&checkOut=2026-07-12", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.wantStatus, body.Code)
			require.NotEmpty(t, body.Message)
		})
	}
}

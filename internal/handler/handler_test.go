package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/handler/dto"
	hmocks "github.com/stpnv0/ClubCourt/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	catalog  *hmocks.MockCatalogSvc
	bookings *hmocks.MockBookingSvc
	members  *hmocks.MockMemberSvc
	report   *hmocks.MockReportSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		catalog:  hmocks.NewMockCatalogSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		members:  hmocks.NewMockMemberSvc(t),
		report:   hmocks.NewMockReportSvc(t),
	}

	h := NewHandler(m.catalog, m.bookings, m.members, m.report)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/facilities", h.CreateFacility)
		api.GET("/facilities", h.ListFacilities)
		api.GET("/facilities/:slug", h.GetFacility)
		api.POST("/facilities/:slug/addons", h.CreateAddOn)
		api.GET("/facilities/:slug/addons", h.ListAddOns)
		api.GET("/facilities/:slug/slots", h.GetSlots)
		api.POST("/facilities/:slug/quote", h.Quote)
		api.POST("/hours", h.CreateHoursRule)
		api.GET("/hours", h.ListHoursRules)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/payment", h.SubmitPayment)
		api.POST("/bookings/:id/verify", h.VerifyPayment)
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id/bookings", h.GetMemberBookings)
		api.GET("/admin/bookings/export", h.ExportBookings)
	}

	return m, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Facilities ---

func TestHandler_CreateFacility_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().CreateFacility(mock.Anything, mock.MatchedBy(func(in domain.CreateFacilityInput) bool {
		return in.Slug == "padel" && len(in.AllowedTiers) == 1 && in.AllowedTiers[0] == domain.TierGold
	})).Return(&domain.Facility{
		ID: uuid.New().String(), Slug: "padel", Label: "Padel", ResourceCount: 2, BasePrice: 6000,
		AllowedTiers: []domain.Tier{domain.TierGold}, CreatedAt: time.Now(),
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/facilities", dto.CreateFacilityRequest{
		Slug: "padel", Label: "Padel", ResourceCount: 2, BasePrice: 6000, AllowedTiers: []string{"GOLD"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.FacilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "padel", resp.Slug)
	assert.Equal(t, []string{"GOLD"}, resp.AllowedTiers)
}

func TestHandler_CreateFacility_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/facilities", map[string]any{"slug": "padel"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateFacility_SlugTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().CreateFacility(mock.Anything, mock.Anything).Return(nil, domain.ErrSlugTaken)

	w := doJSON(r, http.MethodPost, "/api/facilities", dto.CreateFacilityRequest{Slug: "padel", Label: "Padel", ResourceCount: 1})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetFacility_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().GetFacility(mock.Anything, "nope").Return(nil, domain.ErrFacilityNotFound)

	w := doJSON(r, http.MethodGet, "/api/facilities/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListAddOns_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().ListAddOns(mock.Anything, "padel").Return([]domain.AddOn{
		{ID: "a1", FacilityID: "f1", Label: "Rackets", Price: 500},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/facilities/padel/addons", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AddOnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(500), resp[0].Price)
}

func TestHandler_GetSlots_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().Slots(mock.Anything, "padel", "2026-10-16", "v1").Return([]domain.SlotAvailability{
		{StartTime: "09:00", FreeResources: []int{1, 2}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/facilities/padel/slots?date=2026-10-16&venue_id=v1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, []int{1, 2}, resp.Slots[0].FreeResources)
}

func TestHandler_GetSlots_MissingDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/facilities/padel/slots", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Quote ---

func TestHandler_Quote_Success(t *testing.T) {
	m, r := setupRouter(t)

	label := "Gold Member Discount (Off-Peak)"
	m.bookings.EXPECT().Quote(mock.Anything, mock.MatchedBy(func(in domain.QuoteInput) bool {
		return in.FacilitySlug == "padel" && in.Tier == domain.TierGold && in.AddOns["a1"] == 2
	})).Return(domain.BookingSummary{
		BasePrice: 6000, Discount: 1200, DiscountLabel: &label, AddOnTotal: 1000, TotalPrice: 5800,
		Date: "2026-10-16", StartTime: "10:00", EndTime: "11:00",
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/facilities/padel/quote", dto.QuoteRequest{
		Tier: "GOLD", Date: "2026-10-16", StartTime: "10:00", DurationMinutes: 60, AddOns: map[string]int{"a1": 2},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5800), resp.TotalPrice)
	require.NotNil(t, resp.DiscountLabel)
	assert.Equal(t, label, *resp.DiscountLabel)
}

func TestHandler_Quote_NullLabel(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().Quote(mock.Anything, mock.Anything).Return(domain.BookingSummary{BasePrice: 6000, TotalPrice: 6000}, nil)

	w := doJSON(r, http.MethodPost, "/api/facilities/padel/quote", dto.QuoteRequest{
		Date: "2026-10-16", StartTime: "18:00", DurationMinutes: 60,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"discount_label":null`)
}

func TestHandler_Quote_InvalidInput(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().Quote(mock.Anything, mock.Anything).Return(domain.BookingSummary{}, domain.ErrInvalidInput)

	w := doJSON(r, http.MethodPost, "/api/facilities/padel/quote", dto.QuoteRequest{
		Date: "2026-10-16", StartTime: "ten", DurationMinutes: 60,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Hours ---

func TestHandler_CreateHoursRule_Sunday(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().CreateHoursRule(mock.Anything, mock.MatchedBy(func(in domain.CreateHoursRuleInput) bool {
		return in.DayOfWeek == 0
	})).Return(&domain.OperatingHoursRule{ID: "r1", DayOfWeek: 0, OpenTime: "08:00", CloseTime: "20:00", SlotDurationMinutes: 60}, nil)

	w := doJSON(r, http.MethodPost, "/api/hours", map[string]any{
		"day_of_week": 0, "open_time": "08:00", "close_time": "20:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateHoursRule_MissingDay(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/hours", map[string]any{"open_time": "08:00", "close_time": "20:00"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	memberID := uuid.New().String()
	booking := &domain.Booking{
		ID: uuid.New().String(), FacilityID: "f1", MemberID: memberID, ResourceID: 1,
		Date: "2026-10-16", StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60, Players: 4,
		BasePrice: 6000, TotalPrice: 6000,
		Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusPendingPayment,
		CreatedAt: time.Now(),
	}
	m.bookings.EXPECT().Book(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.FacilitySlug == "padel" && in.MemberID == memberID && in.Players == 4
	})).Return(booking, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings", dto.BookRequest{
		Facility: "padel", MemberID: memberID, ResourceID: 1,
		Date: "2026-10-16", StartTime: "10:00", DurationMinutes: 60, Players: 4,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "PENDING_PAYMENT", resp.PaymentStatus)
	assert.Equal(t, int64(6000), resp.Price.TotalPrice)
}

func TestHandler_CreateBooking_InvalidMemberID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", dto.BookRequest{
		Facility: "padel", MemberID: "not-a-uuid", ResourceID: 1,
		Date: "2026-10-16", StartTime: "10:00", DurationMinutes: 60, Players: 4,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"slot taken", domain.ErrSlotTaken, http.StatusConflict},
		{"tier", domain.ErrTierRestricted, http.StatusForbidden},
		{"certification", domain.ErrCertificationRequired, http.StatusForbidden},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"member missing", domain.ErrMemberNotFound, http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			m.bookings.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/bookings", dto.BookRequest{
				Facility: "padel", MemberID: uuid.New().String(), ResourceID: 1,
				Date: "2026-10-16", StartTime: "10:00", DurationMinutes: 60, Players: 4,
			})

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_HandleError_HidesInternalDetails(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	w := doJSON(r, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestHandler_ListBookings_ByFacility(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().GetFacility(mock.Anything, "padel").Return(&domain.Facility{ID: "f1", Slug: "padel"}, nil)
	m.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{FacilityID: "f1", Date: "2026-10-16"}).
		Return([]domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings?facility=padel&date=2026-10-16", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListBookings_MalformedDate(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{Date: "16.10.2026"}).
		Return(nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation))

	w := doJSON(r, http.MethodGet, "/api/bookings?date=16.10.2026", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings/123/cancel", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().Cancel(mock.Anything, id).Return(nil, domain.ErrBookingNotActive)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitPayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().SubmitPayment(mock.Anything, id, "TX-42").Return(&domain.Booking{
		ID: id, Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusPendingVerification,
		PaymentReference: "TX-42",
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/payment", dto.PaymentRequest{Reference: "TX-42"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING_VERIFICATION", resp.PaymentStatus)
}

func TestHandler_VerifyPayment_Reject(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().VerifyPayment(mock.Anything, id, false).Return(&domain.Booking{
		ID: id, Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusRejected,
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/verify", map[string]any{"approve": false})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_VerifyPayment_TransitionConflict(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().VerifyPayment(mock.Anything, id, true).Return(nil, domain.ErrPaymentTransition)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/verify", map[string]any{"approve": true})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_VerifyPayment_MissingDecision(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/verify", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ExportBookings(t *testing.T) {
	m, r := setupRouter(t)

	m.report.EXPECT().ExportBookings(mock.Anything, "2026-10-16").Return([]byte("xlsx"), nil)

	w := doJSON(r, http.MethodGet, "/api/admin/bookings/export?date=2026-10-16", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings_2026-10-16.xlsx")
	assert.Equal(t, "xlsx", w.Body.String())
}

func TestHandler_ExportBookings_MalformedDate(t *testing.T) {
	m, r := setupRouter(t)

	m.report.EXPECT().ExportBookings(mock.Anything, "2026-13-40").
		Return(nil, fmt.Errorf("list bookings: %w", domain.ErrValidation))

	w := doJSON(r, http.MethodGet, "/api/admin/bookings/export?date=2026-13-40", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

// --- Members ---

func TestHandler_CreateMember_Success(t *testing.T) {
	m, r := setupRouter(t)

	chatID := int64(777)
	m.members.EXPECT().Create(mock.Anything, domain.CreateMemberInput{
		Username: "alice", Tier: domain.TierSilver, SafetyCertified: true, TelegramChatID: &chatID,
	}).Return(&domain.Member{
		ID: uuid.New().String(), Username: "alice", Tier: domain.TierSilver, SafetyCertified: true,
		TelegramChatID: &chatID, CreatedAt: time.Now(),
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/members", dto.CreateMemberRequest{
		Username: "alice", Tier: "SILVER", SafetyCertified: true, TelegramChatID: &chatID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SILVER", resp.Tier)
}

func TestHandler_CreateMember_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.members.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(r, http.MethodPost, "/api/members", dto.CreateMemberRequest{Username: "alice"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMembers_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.members.EXPECT().List(mock.Anything).Return([]*domain.Member{{ID: "m1"}, {ID: "m2"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/members", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetMemberBookings_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/members/abc/bookings", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMemberBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().ListByMember(mock.Anything, id).Return([]domain.Booking{{ID: "b1", MemberID: id}}, nil)

	w := doJSON(r, http.MethodGet, "/api/members/"+id+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/handler/dto"
	"github.com/stpnv0/ClubCourt/internal/report"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateFacility(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error)
	ListFacilities(ctx context.Context) ([]*domain.Facility, error)
	GetFacility(ctx context.Context, slug string) (*domain.Facility, error)
	CreateAddOn(ctx context.Context, input domain.CreateAddOnInput) (*domain.AddOn, error)
	ListAddOns(ctx context.Context, slug string) ([]domain.AddOn, error)
	CreateHoursRule(ctx context.Context, input domain.CreateHoursRuleInput) (*domain.OperatingHoursRule, error)
	ListHoursRules(ctx context.Context) ([]domain.OperatingHoursRule, error)
	Slots(ctx context.Context, slug, date, venueID string) ([]domain.SlotAvailability, error)
}

type BookingSvc interface {
	Quote(ctx context.Context, input domain.QuoteInput) (domain.BookingSummary, error)
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	SubmitPayment(ctx context.Context, id, reference string) (*domain.Booking, error)
	VerifyPayment(ctx context.Context, id string, approve bool) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Booking, error)
}

type MemberSvc interface {
	Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}

type ReportSvc interface {
	ExportBookings(ctx context.Context, date string) ([]byte, error)
}

type Handler struct {
	catalogService CatalogSvc
	bookingService BookingSvc
	memberService  MemberSvc
	reportService  ReportSvc
}

func NewHandler(catalogService CatalogSvc, bookingService BookingSvc, memberService MemberSvc, reportService ReportSvc) *Handler {
	return &Handler{
		catalogService: catalogService,
		bookingService: bookingService,
		memberService:  memberService,
		reportService:  reportService,
	}
}

// Facilities

func (h *Handler) CreateFacility(c *ginext.Context) {
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tiers := make([]domain.Tier, 0, len(req.AllowedTiers))
	for _, t := range req.AllowedTiers {
		tiers = append(tiers, domain.Tier(t))
	}

	input := domain.CreateFacilityInput{
		Slug:                  req.Slug,
		Label:                 req.Label,
		VenueID:               req.VenueID,
		ResourceCount:         req.ResourceCount,
		BasePrice:             req.BasePrice,
		MinPlayers:            req.MinPlayers,
		RequiresCertification: req.RequiresCertification,
		AllowedTiers:          tiers,
	}

	f, err := h.catalogService.CreateFacility(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFacilityResponse(f))
}

func (h *Handler) ListFacilities(c *ginext.Context) {
	facilities, err := h.catalogService.ListFacilities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		resp = append(resp, dto.ToFacilityResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetFacility(c *ginext.Context) {
	f, err := h.catalogService.GetFacility(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacilityResponse(f))
}

func (h *Handler) CreateAddOn(c *ginext.Context) {
	var req dto.CreateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	a, err := h.catalogService.CreateAddOn(c.Request.Context(), domain.CreateAddOnInput{
		FacilitySlug: c.Param("slug"),
		Label:        req.Label,
		Price:        req.Price,
		Icon:         req.Icon,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAddOnResponse(a))
}

func (h *Handler) ListAddOns(c *ginext.Context) {
	addOns, err := h.catalogService.ListAddOns(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AddOnResponse, 0, len(addOns))
	for i := range addOns {
		resp = append(resp, dto.ToAddOnResponse(&addOns[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSlots(c *ginext.Context) {
	slug := c.Param("slug")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	slots, err := h.catalogService.Slots(c.Request.Context(), slug, date, c.Query("venue_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SlotsResponse{Facility: slug, Date: date, Slots: slots})
}

func (h *Handler) Quote(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.bookingService.Quote(c.Request.Context(), domain.QuoteInput{
		FacilitySlug:    c.Param("slug"),
		MemberID:        req.MemberID,
		Tier:            domain.Tier(req.Tier),
		ResourceID:      req.ResourceID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		AddOns:          req.AddOns,
		CoachBooked:     req.CoachBooked,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(summary))
}

// Operating hours

func (h *Handler) CreateHoursRule(c *ginext.Context) {
	var req dto.CreateHoursRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := h.catalogService.CreateHoursRule(c.Request.Context(), domain.CreateHoursRuleInput{
		VenueID:             req.VenueID,
		FacilityID:          req.FacilityID,
		DayOfWeek:           *req.DayOfWeek,
		OpenTime:            req.OpenTime,
		CloseTime:           req.CloseTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
		IsClosed:            req.IsClosed,
		IsHoliday:           req.IsHoliday,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoursRuleResponse(rule))
}

func (h *Handler) ListHoursRules(c *ginext.Context) {
	rules, err := h.catalogService.ListHoursRules(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HoursRuleResponse, 0, len(rules))
	for i := range rules {
		resp = append(resp, dto.ToHoursRuleResponse(&rules[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.CreateBookingInput{
		FacilitySlug:    req.Facility,
		MemberID:        req.MemberID,
		VenueID:         req.VenueID,
		ResourceID:      req.ResourceID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Players:         req.Players,
		AddOns:          req.AddOns,
		CoachBooked:     req.CoachBooked,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.BookingFilter{Date: c.Query("date")}

	if slug := c.Query("facility"); slug != "" {
		f, err := h.catalogService.GetFacility(c.Request.Context(), slug)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.FacilityID = f.ID
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) SubmitPayment(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid booking id")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.SubmitPayment(c.Request.Context(), id, req.Reference)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) VerifyPayment(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid booking id")
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.VerifyPayment(c.Request.Context(), id, *req.Approve)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ExportBookings(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	data, err := h.reportService.ExportBookings(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="bookings_%s.xlsx"`, date))
	c.Data(http.StatusOK, report.ContentType, data)
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), domain.CreateMemberInput{
		Username:        req.Username,
		Tier:            domain.Tier(req.Tier),
		SafetyCertified: req.SafetyCertified,
		TelegramChatID:  req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMemberBookings(c *ginext.Context) {
	memberID, ok := uuidParam(c, "id", "invalid member id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func uuidParam(c *ginext.Context, name, msg string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return v, true
}

func toBookingResponses(bookings []domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrPaymentTransition),
		errors.Is(err, domain.ErrSlugTaken),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTierRestricted),
		errors.Is(err, domain.ErrCertificationRequired):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

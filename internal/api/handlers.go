package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/festivos-api/internal/calendar"
	"github.com/zapponejosh/festivos-api/internal/config"
	"github.com/zapponejosh/festivos-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg    *config.Config
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		cfg:    cfg,
		loc:    cfg.Location(),
		logger: log,
		now:    time.Now,
	}
}

// YearHolidays is the response body for the yearly listing.
type YearHolidays struct {
	Year     int                `json:"year"`
	Order    string             `json:"order"`
	Holidays []calendar.Holiday `json:"holidays"`
}

// DateInfo describes a single calendar date.
type DateInfo struct {
	Date        string `json:"date"`
	LongDate    string `json:"long_date"`
	Holiday     bool   `json:"holiday"`
	Name        string `json:"name,omitempty"`
	BusinessDay bool   `json:"business_day"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
		"offset": h.cfg.TimeOffset,
	})
}

// ListCurrentYear handles GET /api/v1/holidays
func (h *Handlers) ListCurrentYear(w http.ResponseWriter, r *http.Request) {
	h.writeYear(w, r, h.today().Year())
}

// ListYear handles GET /api/v1/holidays/{year}
func (h *Handlers) ListYear(w http.ResponseWriter, r *http.Request) {
	year, err := calendar.ValidateYear(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	h.writeYear(w, r, year)
}

func (h *Handlers) writeYear(w http.ResponseWriter, r *http.Request, year int) {
	order := r.URL.Query().Get("order")
	switch order {
	case "", "table":
		order = "table"
	case "date":
	default:
		WriteBadRequest(w, fmt.Sprintf("Invalid order %q. Use table or date", order))
		return
	}

	resolved, err := calendar.ResolveYear(year)
	if err != nil {
		h.fail(w, r, "failed to resolve holidays", err, slog.Int("year", year))
		return
	}
	if order == "date" {
		resolved = calendar.Chronological(resolved)
	}

	WriteSuccess(w, YearHolidays{
		Year:     year,
		Order:    order,
		Holidays: calendar.ToHolidays(resolved, h.cfg.TimeOffset),
	})
}

// GetDate handles GET /api/v1/holidays/date/{date}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}
	h.writeDate(w, r, date)
}

// GetToday handles GET /api/v1/holidays/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	h.writeDate(w, r, h.today())
}

func (h *Handlers) writeDate(w http.ResponseWriter, r *http.Request, date time.Time) {
	name, err := calendar.GetHoliday(date, h.cfg.TimeOffset)
	if err != nil {
		h.fail(w, r, "failed to look up holiday", err, slog.String("date", calendar.FormatDate(date)))
		return
	}
	business, err := calendar.IsBusinessDay(date)
	if err != nil {
		h.fail(w, r, "failed to check business day", err, slog.String("date", calendar.FormatDate(date)))
		return
	}

	WriteSuccess(w, DateInfo{
		Date:        calendar.FormatDate(date),
		LongDate:    calendar.LongDate(date),
		Holiday:     name != "",
		Name:        name,
		BusinessDay: business,
	})
}

// GetEaster handles GET /api/v1/easter/{year}
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, err := calendar.ValidateYear(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	easter := calendar.CalculateEaster(year)
	WriteSuccess(w, map[string]any{
		"year":   year,
		"easter": calendar.ISOString(easter, h.cfg.TimeOffset),
	})
}

// GetNextBusinessDay handles GET /api/v1/business-days/next/{date}
func (h *Handlers) GetNextBusinessDay(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	next, err := calendar.NextBusinessDay(date)
	if err != nil {
		h.fail(w, r, "failed to compute next business day", err, slog.String("date", dateStr))
		return
	}

	WriteSuccess(w, map[string]string{
		"from": calendar.FormatDate(date),
		"next": calendar.FormatDate(next),
	})
}

func (h *Handlers) today() time.Time {
	return calendar.CivilDate(h.now().In(h.loc))
}

// fail writes 400 for invalid input and 500 (logged) for anything else.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	if isClientError(err) {
		WriteBadRequest(w, err.Error())
		return
	}
	logger.Error(r.Context(), h.logger, msg, err, args...)
	WriteInternalError(w, "Internal server error")
}

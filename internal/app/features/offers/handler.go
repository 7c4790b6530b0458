// internal/app/features/offers/handler.go
package offers

import (
	"context"
	"net/http"
	"strconv"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	offerstore "github.com/campusconnect/mentorlink/internal/app/store/offers"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/htmlsanitize"
	"github.com/campusconnect/mentorlink/internal/app/system/inputval"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// maxSlots bounds how many mentees a single offer can take.
const maxSlots = 20

type Handler struct {
	Offers *offerstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(offers *offerstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Offers: offers, ErrLog: errLog, Log: logger}
}

type browseData struct {
	viewdata.BaseVM
	Offers    []models.OfferWithAuthor
	IsStudent bool
}

type formData struct {
	viewdata.BaseVM
	Error       string
	Title       string
	Description string
	Tags        string
	Slots       string
}

type offerInput struct {
	Title       string `validate:"required,max=100" label:"Title"`
	Description string `validate:"required" label:"Description"`
}

// ServeBrowse handles GET /offers: every offer with its author, newest
// first.
func (h *Handler) ServeBrowse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	offers, err := h.Offers.ListAllWithAuthors(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list offers failed", err)
		return
	}

	data := browseData{
		BaseVM:    viewdata.NewBaseVM(r, "Mentor offers", "/dashboard"),
		Offers:    offers,
		IsStudent: authz.IsStudent(r),
	}
	templates.Render(w, r, "offers_browse", data)
}

// ServeNew handles GET /offers/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM: viewdata.NewBaseVM(r, "Post an offer", "/dashboard"),
		Slots:  "1",
	}
	templates.Render(w, r, "offer_new", data)
}

// HandleCreate handles POST /offers.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderFormError(w, r, "Invalid form submission.", formData{Slots: "1"})
		return
	}

	in := offerInput{
		Title:       normalize.Name(r.FormValue("title")),
		Description: r.FormValue("description"),
	}
	echo := formData{
		Title:       in.Title,
		Description: in.Description,
		Tags:        r.FormValue("tags"),
		Slots:       r.FormValue("slots"),
	}

	if result := inputval.Validate(in); result.HasErrors() {
		h.renderFormError(w, r, result.First(), echo)
		return
	}

	tags := normalize.Tags(r.FormValue("tags"))
	if len(tags) == 0 {
		h.renderFormError(w, r, "At least one tag is required.", echo)
		return
	}

	slots, err := strconv.Atoi(r.FormValue("slots"))
	if err != nil || slots < 1 || slots > maxSlots {
		h.renderFormError(w, r, "Slots must be a number between 1 and 20.", echo)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	offer, err := h.Offers.Create(ctx, models.Offer{
		AuthorID:    uid,
		Title:       in.Title,
		Description: htmlsanitize.Sanitize(in.Description),
		Tags:        tags,
		Slots:       slots,
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "create offer failed", err)
		return
	}

	h.Log.Info("offer created",
		zap.String("offer_id", offer.ID.Hex()),
		zap.String("author_id", uid.Hex()),
		zap.Int("slots", slots))

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, msg string, echo formData) {
	echo.BaseVM = viewdata.NewBaseVM(r, "Post an offer", "/dashboard")
	echo.Error = msg
	templates.Render(w, r, "offer_new", echo)
}

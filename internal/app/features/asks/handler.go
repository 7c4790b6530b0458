// internal/app/features/asks/handler.go
package asks

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	askstore "github.com/campusconnect/mentorlink/internal/app/store/asks"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/htmlsanitize"
	"github.com/campusconnect/mentorlink/internal/app/system/inputval"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Asks   *askstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(asks *askstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Asks: asks, ErrLog: errLog, Log: logger}
}

type formData struct {
	viewdata.BaseVM
	Error       string
	Title       string
	Description string
	Tags        string
	ProjectURL  string
}

type detailData struct {
	viewdata.BaseVM
	Ask     models.Ask
	IsOwner bool
}

type askInput struct {
	Title       string `validate:"required,max=100" label:"Title"`
	Description string `validate:"required" label:"Description"`
	ProjectURL  string `validate:"httpurl" label:"Project URL"`
}

// ServeNew handles GET /asks/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{BaseVM: viewdata.NewBaseVM(r, "Post an ask", "/dashboard")}
	templates.Render(w, r, "ask_new", data)
}

// HandleCreate handles POST /asks.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderFormError(w, r, "Invalid form submission.", formData{})
		return
	}

	in := askInput{
		Title:       normalize.Name(r.FormValue("title")),
		Description: r.FormValue("description"),
		ProjectURL:  normalize.Name(r.FormValue("project_url")),
	}
	echo := formData{
		Title:       in.Title,
		Description: in.Description,
		Tags:        r.FormValue("tags"),
		ProjectURL:  in.ProjectURL,
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ask, err := h.Asks.Create(ctx, models.Ask{
		AuthorID:    uid,
		Title:       in.Title,
		Description: htmlsanitize.Sanitize(in.Description),
		Tags:        tags,
		ProjectURL:  in.ProjectURL,
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "create ask failed", err)
		return
	}

	h.Log.Info("ask created",
		zap.String("ask_id", ask.ID.Hex()),
		zap.String("author_id", uid.Hex()))

	http.Redirect(w, r, "/asks/"+ask.ID.Hex(), http.StatusSeeOther)
}

// ServeDetail handles GET /asks/{askID}. The ask's owner also gets the
// mentor suggestions panel, which loads from /api/match/{askID}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "askID"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Ask not found.", "/dashboard")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ask, err := h.Asks.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.RenderForbidden(w, r, "Ask not found.", "/dashboard")
			return
		}
		h.ErrLog.Internal(w, r, "load ask failed", err)
		return
	}

	data := detailData{
		BaseVM:  viewdata.NewBaseVM(r, ask.Title, "/dashboard"),
		Ask:     ask,
		IsOwner: authz.IsOwner(r, ask.AuthorID),
	}
	templates.Render(w, r, "ask_detail", data)
}

func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, msg string, echo formData) {
	echo.BaseVM = viewdata.NewBaseVM(r, "Post an ask", "/dashboard")
	echo.Error = msg
	templates.Render(w, r, "ask_new", echo)
}

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/haileyart/portfolio/internal/platform/request"
	"github.com/haileyart/portfolio/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the profile route group. admin is the shared-secret gate
// applied to the upsert endpoint.
func (handler *Handler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(admin)

		adminRoute.Put("/", handler.update)
	})

	return router
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Before any profile exists the public site still gets a stable shape
	// with explicit nulls.
	if result == nil {
		respond.OK(writer, Placeholder{})
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Update(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

// decodeInput extracts an [Input] from the admin client's multipart form.
func decodeInput(request *http.Request) (Input, error) {
	if err := requestutil.ParseForm(request); err != nil {
		return Input{}, err
	}

	upload, err := requestutil.FormImage(request, "image")
	if err != nil {
		return Input{}, err
	}

	input := Input{Description: requestutil.FormValue(request, "description")}
	if upload != nil {
		input.Image = &ImageUpload{Filename: upload.Filename, Data: upload.Data}
	}
	return input, nil
}

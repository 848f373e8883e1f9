package artwork

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

// Routes returns the artwork route group. admin is the shared-secret gate
// applied to every mutating endpoint.
func (handler *Handler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)
	router.Get("/artist-pick", handler.getArtistPick)
	router.Get("/collection-pick/{collection}", handler.getCollectionPick)
	router.Get("/{id}", handler.get)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(admin)

		adminRoute.Post("/", handler.create)
		adminRoute.Put("/{id}", handler.update)
		adminRoute.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{}
	if collection := request.URL.Query().Get("collection"); collection != "" {
		filter.Collection = &collection
	}

	artworks, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Empty sets serialize as [] rather than null.
	if artworks == nil {
		artworks = []*Artwork{}
	}
	respond.OK(writer, artworks)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	artwork, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artwork)
}

func (handler *Handler) getArtistPick(writer http.ResponseWriter, request *http.Request) {
	artwork, err := handler.service.GetArtistPick(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artwork)
}

func (handler *Handler) getCollectionPick(writer http.ResponseWriter, request *http.Request) {
	collection := requestutil.Param(request, "collection")

	artwork, err := handler.service.GetCollectionPick(request.Context(), collection)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artwork)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, artwork)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artwork)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Delete(request.Context(), requestutil.Param(request, "id"))
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

	viewOrder, err := requestutil.FormIntPtr(request, FieldViewOrder)
	if err != nil {
		return Input{}, err
	}

	upload, err := requestutil.FormImage(request, FieldImage)
	if err != nil {
		return Input{}, err
	}

	input := Input{
		Title:            requestutil.FormValue(request, FieldTitle),
		Description:      requestutil.FormValue(request, "description"),
		Collection:       requestutil.FormValue(request, "collection"),
		Medium:           requestutil.FormValue(request, "medium"),
		Dimensions:       requestutil.FormValue(request, "dimensions"),
		IsArtistPick:     requestutil.FormBool(request, "isArtistPick"),
		IsCollectionPick: requestutil.FormBool(request, "isCollectionPick"),
		ViewOrder:        viewOrder,
	}

	if upload != nil {
		input.Image = &ImageUpload{Filename: upload.Filename, Data: upload.Data}
	}
	return input, nil
}

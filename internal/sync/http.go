package sync

import (
	"net/http"

	"github.com/haileyart/portfolio/internal/platform/apperr"
	"github.com/haileyart/portfolio/internal/platform/respond"
)

type Handler struct {
	pipeline *Pipeline
}

func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

type triggerStats struct {
	Artworks    int    `json:"artworks"`
	Collections int    `json:"collections"`
	Profile     string `json:"profile"`
	ArtistPick  string `json:"artistPick"`
}

type triggerResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Stats   triggerStats `json:"stats"`
}

// Trigger runs the pipeline synchronously and reports its summary.
func (handler *Handler) Trigger(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.pipeline.Run(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.SyncFailed(err))
		return
	}

	stats := triggerStats{
		Artworks:    summary.Artworks,
		Collections: summary.Collections,
		Profile:     "None",
		ArtistPick:  "None",
	}
	if summary.ProfileFound {
		stats.Profile = "Updated"
	}
	if summary.ArtistPickTitle != "" {
		stats.ArtistPick = summary.ArtistPickTitle
	}

	respond.OK(writer, triggerResponse{
		Success: true,
		Message: "Static site data synchronized successfully",
		Stats:   stats,
	})
}

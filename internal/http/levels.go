package http

import (
	"net/http"
	"strconv"

	"github.com/apitrail/apitrail/internal/catalog"
	"github.com/apitrail/apitrail/pkg/httpx"
	"github.com/apitrail/apitrail/pkg/trailsdk"
)

// LevelsHandler serves the lesson catalog. The catalog is embedded in the
// binary and immutable, so these endpoints never touch the database.
type LevelsHandler struct {
	Levels *catalog.Catalog
}

// HandleList handles GET /levels
//
//	@Summary		List Levels
//	@Description	Returns every lesson in order, in summary form. Fetch a single
//	@Description	level for its key points and steps.
//	@Tags			Levels
//	@Produce		json
//	@Success		200	{object}	trailsdk.ListLevelsResponse	"levels, count"
//	@Router			/levels [get].
func (h *LevelsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	levels := h.Levels.Levels()

	summaries := make([]trailsdk.LevelSummary, len(levels))
	for i, lvl := range levels {
		summaries[i] = lvl.Summarize()
	}

	response := trailsdk.ListLevelsResponse{
		Levels: summaries,
		Count:  len(summaries),
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet handles GET /levels/{id}
//
//	@Summary		Get Level
//	@Description	Returns one lesson in full, including key points and hands-on steps.
//	@Tags			Levels
//	@Produce		json
//	@Param			id	path		int					true	"Level id, starting at 1"
//	@Success		200	{object}	trailsdk.Level		"the full lesson"
//	@Failure		400	{object}	trailsdk.APIError	"id is not a positive integer"
//	@Failure		404	{object}	trailsdk.APIError	"no such level"
//	@Router			/levels/{id} [get].
func (h *LevelsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		trailsdk.NewAPIError(http.StatusBadRequest,
			trailsdk.ErrorCodeValidation,
			"level id must be a positive integer",
		).WriteError(w)
		return
	}

	level, ok := h.Levels.Get(id)
	if !ok {
		trailsdk.NewAPIError(http.StatusNotFound,
			trailsdk.ErrorCodeNotFound,
			"level not found",
		).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, level)
}

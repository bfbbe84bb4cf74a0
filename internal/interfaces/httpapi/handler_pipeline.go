package httpapi

import "net/http"

// RunPipeline starts a background run and answers immediately. A run
// already in flight maps to 409.
func (h *Handler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunPipeline")
	defer span.End()

	if err := h.pipelineService.Trigger(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{
		"message": "pipeline run started",
	})
}

func (h *Handler) PipelineStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PipelineStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.pipelineService.Status())
}

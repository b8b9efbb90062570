package http

import (
	"net/http"

	"github.com/microfund/go-microfund/internal/utils"
	"github.com/microfund/go-microfund/models"
)

// writeError sends the uniform {"status":"error","message":...} envelope.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.APIResponse{Status: "error", Message: message}, statusCode)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rhpartnersafric/website-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeValidationErrors renvoie un 422 avec les erreurs champ par champ,
// pour que le front re-présente le formulaire avec la saisie d'origine.
func writeValidationErrors(w http.ResponseWriter, verr *usecase.ValidationFailedError) {
	fields := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "VALIDATION_ERROR",
		"fields": fields,
	})
}

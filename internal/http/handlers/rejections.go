package handlers

import (
	"errors"
	"net/http"

	"github.com/godswill-dev/guardian-be/internal/domain"
	"github.com/godswill-dev/guardian-be/internal/http/respond"
	"github.com/godswill-dev/guardian-be/internal/metrics"
)

// writeRejection maps a business-rule rejection to 422 and counts it. It
// returns false when err is not a rejection so the caller can handle system
// errors its own way.
func writeRejection(w http.ResponseWriter, rec metrics.Recorder, kind string, err error) bool {
	var rej *domain.Rejection
	if !errors.As(err, &rej) {
		return false
	}
	rec.RecordRejection(kind, rej.Rule)
	respond.Error(w, http.StatusUnprocessableEntity, rej.Error())
	return true
}

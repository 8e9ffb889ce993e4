package handlers

import (
	"errors"
	"strings"

	"frontdesk/services/desk"

	"github.com/go-playground/validator/v10"
)

// DeskHandler exposes the front-desk service over HTTP.
type DeskHandler struct {
	Service desk.Service
}

// NewDeskHandler returns a handler backed by the given service.
func NewDeskHandler(svc desk.Service) *DeskHandler {
	return &DeskHandler{Service: svc}
}

// bindingErrorMessage turns gin binding failures into readable text instead
// of the raw validator dump.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				parts = append(parts, "field '"+fe.Field()+"' is required")
			default:
				parts = append(parts, "field '"+fe.Field()+"' failed on '"+fe.Tag()+"'")
			}
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

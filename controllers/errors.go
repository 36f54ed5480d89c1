package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"gigtax/auth"
	"gigtax/services"

	restful "github.com/emicklei/go-restful/v3"
)

// handleServiceError translates service errors to HTTP responses.
func handleServiceError(response *restful.Response, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		_ = response.WriteHeaderAndJson(http.StatusNotFound, map[string]string{"message": notFound.Error()}, restful.MIME_JSON)
	case errors.As(err, &validation):
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"reason": validation.Error()}, restful.MIME_JSON)
	case errors.Is(err, services.ErrUsernameTaken):
		_ = response.WriteHeaderAndJson(http.StatusConflict, map[string]string{"message": err.Error()}, restful.MIME_JSON)
	default:
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, map[string]string{"message": err.Error()}, restful.MIME_JSON)
	}
}

// requireIdentity extracts the Identity set by the auth filter, failing the
// request when it is missing.
func requireIdentity(request *restful.Request, response *restful.Response) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromRequest(request)
	if !ok {
		_ = response.WriteHeaderAndJson(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Cannot identify requesting user"}, restful.MIME_JSON)
		return auth.Identity{}, false
	}
	return identity, true
}

// parseIDParam parses the numeric id path parameter.
func parseIDParam(request *restful.Request, response *restful.Response, name string) (uint, bool) {
	raw := request.PathParameter(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid " + name + " format"}, restful.MIME_JSON)
		return 0, false
	}
	return uint(id), true
}

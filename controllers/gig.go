package controllers

import (
	"net/http"

	"gigtax/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// GigController exposes the owner-scoped gig CRUD routes.
type GigController struct {
	gigService services.GigService
}

// NewGigController creates a GigController instance
func NewGigController(gigService services.GigService) *GigController {
	return &GigController{gigService: gigService}
}

// RegisterRoutes sets up the gig routes behind the auth filter.
func (ctl *GigController) RegisterRoutes(ws *restful.WebService, authFilter restful.FilterFunction) {
	ws.Path("/gigs").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("").Filter(authFilter).To(ctl.listHandler).
		Doc("List the caller's gigs").
		Metadata(restfulspec.KeyOpenAPITags, []string{"gigs"}).
		Writes([]GigResponse{}).
		Returns(http.StatusOK, "Gigs listed", []GigResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.POST("").Filter(authFilter).To(ctl.createHandler).
		Doc("Create a gig for the caller").
		Metadata(restfulspec.KeyOpenAPITags, []string{"gigs"}).
		Reads(services.GigInput{}).
		Returns(http.StatusCreated, "Gig created", GigResponse{}).
		Returns(http.StatusBadRequest, "Validation failure", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.GET("/{gig-id}").Filter(authFilter).To(ctl.retrieveHandler).
		Doc("Get one of the caller's gigs").
		Param(ws.PathParameter("gig-id", "Identifier of the gig").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"gigs"}).
		Writes(GigResponse{}).
		Returns(http.StatusOK, "Gig found", GigResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Gig not found", nil))

	ws.Route(ws.PUT("/{gig-id}").Filter(authFilter).To(ctl.updateHandler).
		Doc("Replace one of the caller's gigs").
		Param(ws.PathParameter("gig-id", "Identifier of the gig").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"gigs"}).
		Reads(services.GigInput{}).
		Returns(http.StatusNoContent, "Gig updated", nil).
		Returns(http.StatusBadRequest, "Validation failure", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Gig not found", nil))

	ws.Route(ws.DELETE("/{gig-id}").Filter(authFilter).To(ctl.deleteHandler).
		Doc("Delete one of the caller's gigs").
		Param(ws.PathParameter("gig-id", "Identifier of the gig").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"gigs"}).
		Returns(http.StatusNoContent, "Gig deleted", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Gig not found", nil))
}

func (ctl *GigController) listHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}

	gigs, err := ctl.gigService.List(identity)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	responses := make([]GigResponse, len(gigs))
	for i := range gigs {
		responses[i] = mapGigToResponse(&gigs[i])
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, responses, restful.MIME_JSON)
}

func (ctl *GigController) createHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}

	input := new(services.GigInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	gig, err := ctl.gigService.Create(identity, input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, mapGigToResponse(gig), restful.MIME_JSON)
}

func (ctl *GigController) retrieveHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "gig-id")
	if !ok {
		return
	}

	gig, err := ctl.gigService.Retrieve(identity, id)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapGigToResponse(gig), restful.MIME_JSON)
}

func (ctl *GigController) updateHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "gig-id")
	if !ok {
		return
	}

	input := new(services.GigInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	if err := ctl.gigService.Update(identity, id, input); err != nil {
		handleServiceError(response, err)
		return
	}

	response.WriteHeader(http.StatusNoContent)
}

func (ctl *GigController) deleteHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "gig-id")
	if !ok {
		return
	}

	if err := ctl.gigService.Delete(identity, id); err != nil {
		handleServiceError(response, err)
		return
	}

	response.WriteHeader(http.StatusNoContent)
}

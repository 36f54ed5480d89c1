package controllers

import (
	"net/http"

	"gigtax/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// TourController exposes the owner-scoped tour CRUD routes.
type TourController struct {
	tourService services.TourService
}

// NewTourController creates a TourController instance
func NewTourController(tourService services.TourService) *TourController {
	return &TourController{tourService: tourService}
}

// RegisterRoutes sets up the tour routes behind the auth filter.
func (ctl *TourController) RegisterRoutes(ws *restful.WebService, authFilter restful.FilterFunction) {
	ws.Path("/tours").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("").Filter(authFilter).To(ctl.listHandler).
		Doc("List the caller's tours").
		Metadata(restfulspec.KeyOpenAPITags, []string{"tours"}).
		Writes([]TourResponse{}).
		Returns(http.StatusOK, "Tours listed", []TourResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.POST("").Filter(authFilter).To(ctl.createHandler).
		Doc("Create a tour for the caller").
		Metadata(restfulspec.KeyOpenAPITags, []string{"tours"}).
		Reads(services.TourInput{}).
		Returns(http.StatusCreated, "Tour created", TourResponse{}).
		Returns(http.StatusBadRequest, "Validation failure", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.GET("/{tour-id}").Filter(authFilter).To(ctl.retrieveHandler).
		Doc("Get one of the caller's tours").
		Param(ws.PathParameter("tour-id", "Identifier of the tour").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"tours"}).
		Writes(TourResponse{}).
		Returns(http.StatusOK, "Tour found", TourResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Tour not found", nil))

	ws.Route(ws.PUT("/{tour-id}").Filter(authFilter).To(ctl.updateHandler).
		Doc("Replace one of the caller's tours").
		Param(ws.PathParameter("tour-id", "Identifier of the tour").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"tours"}).
		Reads(services.TourInput{}).
		Returns(http.StatusNoContent, "Tour updated", nil).
		Returns(http.StatusBadRequest, "Validation failure", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Tour not found", nil))

	ws.Route(ws.DELETE("/{tour-id}").Filter(authFilter).To(ctl.deleteHandler).
		Doc("Delete one of the caller's tours").
		Param(ws.PathParameter("tour-id", "Identifier of the tour").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"tours"}).
		Returns(http.StatusNoContent, "Tour deleted", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Tour not found", nil))
}

func (ctl *TourController) listHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}

	tours, err := ctl.tourService.List(identity)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	responses := make([]TourResponse, len(tours))
	for i := range tours {
		responses[i] = mapTourToResponse(&tours[i])
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, responses, restful.MIME_JSON)
}

func (ctl *TourController) createHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}

	input := new(services.TourInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	tour, err := ctl.tourService.Create(identity, input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, mapTourToResponse(tour), restful.MIME_JSON)
}

func (ctl *TourController) retrieveHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "tour-id")
	if !ok {
		return
	}

	tour, err := ctl.tourService.Retrieve(identity, id)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapTourToResponse(tour), restful.MIME_JSON)
}

func (ctl *TourController) updateHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "tour-id")
	if !ok {
		return
	}

	input := new(services.TourInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	if err := ctl.tourService.Update(identity, id, input); err != nil {
		handleServiceError(response, err)
		return
	}

	response.WriteHeader(http.StatusNoContent)
}

func (ctl *TourController) deleteHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "tour-id")
	if !ok {
		return
	}

	if err := ctl.tourService.Delete(identity, id); err != nil {
		handleServiceError(response, err)
		return
	}

	response.WriteHeader(http.StatusNoContent)
}

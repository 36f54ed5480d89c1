package controllers

import (
	"net/http"

	"gigtax/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// MusicianController exposes musician profile reads. The listing is open to
// anonymous callers; single-profile retrieval is self-lookup only.
type MusicianController struct {
	musicianService services.MusicianService
}

// NewMusicianController creates a MusicianController instance
func NewMusicianController(musicianService services.MusicianService) *MusicianController {
	return &MusicianController{musicianService: musicianService}
}

// RegisterRoutes sets up the musician routes.
func (ctl *MusicianController) RegisterRoutes(ws *restful.WebService, authFilter restful.FilterFunction) {
	ws.Path("/musicians").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("").To(ctl.listHandler).
		Doc("List musicians, optionally filtered by user email").
		Param(ws.QueryParameter("q", "Exact email of the owning user").DataType("string")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"musicians"}).
		Writes([]MusicianResponse{}).
		Returns(http.StatusOK, "Musicians listed", []MusicianResponse{}))

	ws.Route(ws.GET("/{musician-id}").Filter(authFilter).To(ctl.retrieveHandler).
		Doc("Get the caller's own musician profile").
		Param(ws.PathParameter("musician-id", "Identifier of the musician").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"musicians"}).
		Writes(MusicianResponse{}).
		Returns(http.StatusOK, "Musician found", MusicianResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Musician not found", nil))
}

func (ctl *MusicianController) listHandler(request *restful.Request, response *restful.Response) {
	query := request.QueryParameter("q")

	musicians, err := ctl.musicianService.List(query)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	responses := make([]MusicianResponse, len(musicians))
	for i := range musicians {
		responses[i] = mapMusicianToResponse(musicians[i])
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, responses, restful.MIME_JSON)
}

func (ctl *MusicianController) retrieveHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "musician-id")
	if !ok {
		return
	}

	musician, err := ctl.musicianService.Retrieve(identity, id)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapMusicianToResponse(*musician), restful.MIME_JSON)
}

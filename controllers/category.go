package controllers

import (
	"net/http"

	"gigtax/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// CategoryController exposes the read-only category reference data.
type CategoryController struct {
	categoryService services.CategoryService
}

// NewCategoryController creates a CategoryController instance
func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// RegisterRoutes sets up the category routes behind the auth filter.
func (ctl *CategoryController) RegisterRoutes(ws *restful.WebService, authFilter restful.FilterFunction) {
	ws.Path("/categories").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("").Filter(authFilter).To(ctl.listHandler).
		Doc("List expense categories").
		Metadata(restfulspec.KeyOpenAPITags, []string{"categories"}).
		Writes([]CategoryResponse{}).
		Returns(http.StatusOK, "Categories listed", []CategoryResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.GET("/{category-id}").Filter(authFilter).To(ctl.retrieveHandler).
		Doc("Get a single expense category").
		Param(ws.PathParameter("category-id", "Identifier of the category").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"categories"}).
		Writes(CategoryResponse{}).
		Returns(http.StatusOK, "Category found", CategoryResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusInternalServerError, "Lookup failed", nil))
}

func (ctl *CategoryController) listHandler(request *restful.Request, response *restful.Response) {
	categories, err := ctl.categoryService.List()
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, map[string]string{"message": err.Error()}, restful.MIME_JSON)
		return
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = mapCategoryToResponse(&categories[i])
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, responses, restful.MIME_JSON)
}

// retrieveHandler reports every lookup failure, including an unknown id, as
// a server error. Kept for compatibility with existing clients.
func (ctl *CategoryController) retrieveHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseIDParam(request, response, "category-id")
	if !ok {
		return
	}

	category, err := ctl.categoryService.Retrieve(id)
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, map[string]string{"message": err.Error()}, restful.MIME_JSON)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapCategoryToResponse(category), restful.MIME_JSON)
}

package controllers

import (
	"net/http"

	"gigtax/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// AuthController exposes the public registration and login routes.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates an AuthController instance
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes sets up the registration/login routes. Neither takes the
// auth filter; both are reachable anonymously.
func (ctl *AuthController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.POST("/register").To(ctl.registerHandler).
		Doc("Register a new musician account").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Reads(services.RegisterInput{}).
		Returns(http.StatusCreated, "Account created", services.RegisterResult{}).
		Returns(http.StatusBadRequest, "Invalid request body", nil).
		Returns(http.StatusConflict, "Username already exists", nil))

	ws.Route(ws.POST("/login").To(ctl.loginHandler).
		Doc("Authenticate a musician").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Reads(services.LoginInput{}).
		Returns(http.StatusOK, "Credential check result", services.LoginResult{}))
}

// registerHandler (Handles POST /register)
func (ctl *AuthController) registerHandler(request *restful.Request, response *restful.Response) {
	input := new(services.RegisterInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	result, err := ctl.authService.Register(input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, result, restful.MIME_JSON)
}

// loginHandler (Handles POST /login). A wrong credential is not an error
// status; the result body carries valid=false.
func (ctl *AuthController) loginHandler(request *restful.Request, response *restful.Response) {
	input := new(services.LoginInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	result, err := ctl.authService.Login(input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, result, restful.MIME_JSON)
}

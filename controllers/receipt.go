package controllers

import (
	"net/http"

	"gigtax/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// ReceiptController exposes the owner-scoped receipt CRUD routes.
type ReceiptController struct {
	receiptService services.ReceiptService
}

// NewReceiptController creates a ReceiptController instance
func NewReceiptController(receiptService services.ReceiptService) *ReceiptController {
	return &ReceiptController{receiptService: receiptService}
}

// RegisterRoutes sets up the receipt routes behind the auth filter.
func (ctl *ReceiptController) RegisterRoutes(ws *restful.WebService, authFilter restful.FilterFunction) {
	ws.Path("/receipts").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("").Filter(authFilter).To(ctl.listHandler).
		Doc("List the caller's receipts").
		Metadata(restfulspec.KeyOpenAPITags, []string{"receipts"}).
		Writes([]ReceiptResponse{}).
		Returns(http.StatusOK, "Receipts listed", []ReceiptResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.POST("").Filter(authFilter).To(ctl.createHandler).
		Doc("Create a receipt for the caller").
		Metadata(restfulspec.KeyOpenAPITags, []string{"receipts"}).
		Reads(services.ReceiptInput{}).
		Returns(http.StatusCreated, "Receipt created", ReceiptResponse{}).
		Returns(http.StatusBadRequest, "Validation failure", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.GET("/{receipt-id}").Filter(authFilter).To(ctl.retrieveHandler).
		Doc("Get one of the caller's receipts").
		Param(ws.PathParameter("receipt-id", "Identifier of the receipt").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"receipts"}).
		Writes(ReceiptResponse{}).
		Returns(http.StatusOK, "Receipt found", ReceiptResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Receipt not found", nil))

	ws.Route(ws.PUT("/{receipt-id}").Filter(authFilter).To(ctl.updateHandler).
		Doc("Replace one of the caller's receipts").
		Param(ws.PathParameter("receipt-id", "Identifier of the receipt").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"receipts"}).
		Reads(services.ReceiptInput{}).
		Returns(http.StatusNoContent, "Receipt updated", nil).
		Returns(http.StatusBadRequest, "Validation failure", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Receipt not found", nil))

	ws.Route(ws.DELETE("/{receipt-id}").Filter(authFilter).To(ctl.deleteHandler).
		Doc("Delete one of the caller's receipts").
		Param(ws.PathParameter("receipt-id", "Identifier of the receipt").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"receipts"}).
		Returns(http.StatusNoContent, "Receipt deleted", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Receipt not found", nil))
}

func (ctl *ReceiptController) listHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}

	receipts, err := ctl.receiptService.List(identity)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	responses := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		responses[i] = mapReceiptToResponse(&receipts[i])
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, responses, restful.MIME_JSON)
}

func (ctl *ReceiptController) createHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}

	input := new(services.ReceiptInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	receipt, err := ctl.receiptService.Create(identity, input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, mapReceiptToResponse(receipt), restful.MIME_JSON)
}

func (ctl *ReceiptController) retrieveHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "receipt-id")
	if !ok {
		return
	}

	receipt, err := ctl.receiptService.Retrieve(identity, id)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapReceiptToResponse(receipt), restful.MIME_JSON)
}

func (ctl *ReceiptController) updateHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "receipt-id")
	if !ok {
		return
	}

	input := new(services.ReceiptInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	if err := ctl.receiptService.Update(identity, id, input); err != nil {
		handleServiceError(response, err)
		return
	}

	response.WriteHeader(http.StatusNoContent)
}

func (ctl *ReceiptController) deleteHandler(request *restful.Request, response *restful.Response) {
	identity, ok := requireIdentity(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "receipt-id")
	if !ok {
		return
	}

	if err := ctl.receiptService.Delete(identity, id); err != nil {
		handleServiceError(response, err)
		return
	}

	response.WriteHeader(http.StatusNoContent)
}

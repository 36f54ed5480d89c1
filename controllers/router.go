package controllers

import (
	restful "github.com/emicklei/go-restful/v3"
)

// Controllers groups every controller for route registration.
type Controllers struct {
	Auth     *AuthController
	Gig      *GigController
	Tour     *TourController
	Receipt  *ReceiptController
	Musician *MusicianController
	Category *CategoryController
}

// NewContainer assembles a restful container with one WebService per
// resource root, protected routes wrapped in the given auth filter.
func NewContainer(ctls Controllers, authFilter restful.FilterFunction) *restful.Container {
	container := restful.NewContainer()

	authWS := new(restful.WebService)
	ctls.Auth.RegisterRoutes(authWS)
	container.Add(authWS)

	gigWS := new(restful.WebService)
	ctls.Gig.RegisterRoutes(gigWS, authFilter)
	container.Add(gigWS)

	tourWS := new(restful.WebService)
	ctls.Tour.RegisterRoutes(tourWS, authFilter)
	container.Add(tourWS)

	receiptWS := new(restful.WebService)
	ctls.Receipt.RegisterRoutes(receiptWS, authFilter)
	container.Add(receiptWS)

	musicianWS := new(restful.WebService)
	ctls.Musician.RegisterRoutes(musicianWS, authFilter)
	container.Add(musicianWS)

	categoryWS := new(restful.WebService)
	ctls.Category.RegisterRoutes(categoryWS, authFilter)
	container.Add(categoryWS)

	return container
}

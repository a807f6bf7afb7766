package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every resource handler mounted on the API router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

package contracts

import "github.com/julienschmidt/httprouter"

type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Guard wraps a protected route so the check runs before the handler body
// and short-circuits on failure.
type Guard func(httprouter.Handle) httprouter.Handle

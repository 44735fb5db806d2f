package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RestaurantHandler is the handler surface the router wires up.
type RestaurantHandler interface {
	GetOpenRestaurants(w http.ResponseWriter, r *http.Request)
	GetRestaurantAvailability(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	restaurantHandler RestaurantHandler
	router            *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	restaurantHandler RestaurantHandler,
	router *mux.Router) *Router {
	return &Router{
		restaurantHandler: restaurantHandler,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude}&lon={longitude}&radius={km}[&at=RFC3339][&course=A..E][&verbose=bool]
	r.router.HandleFunc("/v1/restaurants/open", r.restaurantHandler.GetOpenRestaurants).Methods("GET")

	r.router.HandleFunc("/v1/restaurants/{code}/availability", r.restaurantHandler.GetRestaurantAvailability).Methods("GET")

	r.router.HandleFunc("/ping", r.restaurantHandler.Ping).Methods("GET")
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"kanda-curry/config"
	"kanda-curry/models"
	"kanda-curry/schedule"
	services "kanda-curry/service"
)

const (
	LAT_QUERY_ARG     = "lat"
	LNG_QUERY_ARG     = "lon"
	RADIUS_QUERY_ARG  = "radius"
	AT_QUERY_ARG      = "at"
	COURSE_QUERY_ARG  = "course"
	VERBOSE_QUERY_ARG = "verbose"
)

// RestaurantWithAvailability pairs a full record with its evaluation.
type RestaurantWithAvailability struct {
	Restaurant   models.Restaurant           `json:"restaurant"`
	Availability schedule.AvailabilityResult `json:"availability"`
	ClosingSoon  bool                        `json:"closing_soon"`
}

// MinifiedRestaurant is the small form returned when verbose=false.
type MinifiedRestaurant struct {
	Code           int    `json:"code"`
	Name           string `json:"name"`
	Course         string `json:"course"`
	Address        string `json:"address"`
	IsOpen         bool   `json:"is_open"`
	MinutesToClose int    `json:"minutes_to_close"`
	ClosingSoon    bool   `json:"closing_soon"`
}

// OpenRestaurantsResponse partitions nearby restaurants into open and
// closed at the query instant.
type OpenRestaurantsResponse struct {
	At     string      `json:"at"`
	Open   interface{} `json:"open"`
	Closed interface{} `json:"closed"`
}

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// GetOpenRestaurants handles GET /v1/restaurants/open.
func (h *RestaurantHandler) GetOpenRestaurants(w http.ResponseWriter, r *http.Request) {
	lat, lng, radius, at, course, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	restaurants, err := h.restaurantService.GetRestaurantsNearby(lat, lng, radius)
	if err != nil {
		log.Println("Error loading nearby restaurants:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var open, closed []RestaurantWithAvailability
	for _, rest := range restaurants {
		if course != "" && rest.Course != course {
			continue
		}
		avail := h.restaurantService.EvaluateAt(rest, at)
		entry := RestaurantWithAvailability{
			Restaurant:   rest,
			Availability: avail,
			ClosingSoon:  avail.IsOpen && avail.MinutesToClose <= config.CLOSING_SOON_THRESHOLD_MINUTES,
		}
		if avail.IsOpen {
			open = append(open, entry)
		} else {
			closed = append(closed, entry)
		}
	}

	// longest remaining time first
	sort.Slice(open, func(i, j int) bool {
		return open[i].Availability.MinutesToClose > open[j].Availability.MinutesToClose
	})

	response := OpenRestaurantsResponse{
		At:     at.Format(time.RFC3339),
		Open:   transform(open, verbose),
		Closed: transform(closed, verbose),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetRestaurantAvailability handles GET /v1/restaurants/{code}/availability.
func (h *RestaurantHandler) GetRestaurantAvailability(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(mux.Vars(r)["code"])
	if err != nil {
		http.Error(w, "Invalid restaurant code", http.StatusBadRequest)
		return
	}

	at, err := parseAtArg(r.URL.Query())
	if err != nil {
		http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
		return
	}

	rest, err := h.restaurantService.GetRestaurant(code)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	avail := h.restaurantService.EvaluateAt(*rest, at)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(RestaurantWithAvailability{
		Restaurant:   *rest,
		Availability: avail,
		ClosingSoon:  avail.IsOpen && avail.MinutesToClose <= config.CLOSING_SOON_THRESHOLD_MINUTES,
	})
}

// Ping handles GET /ping.
func (h *RestaurantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func (h *RestaurantHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lng, radius float64, at time.Time, course string, verbose, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	at, err = parseAtArg(vals)
	if err != nil {
		http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	course = vals.Get(COURSE_QUERY_ARG)
	verbose = false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

// parseAtArg reads the query instant; absent means now in JST.
func parseAtArg(vals url.Values) (time.Time, error) {
	s := vals.Get(AT_QUERY_ARG)
	if s == "" {
		return time.Now().In(config.JST()), nil
	}
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return at.In(config.JST()), nil
}

func transform(entries []RestaurantWithAvailability, verbose bool) interface{} {
	if verbose {
		return entries
	}
	min := make([]MinifiedRestaurant, 0, len(entries))
	for _, e := range entries {
		min = append(min, MinifiedRestaurant{
			Code:           e.Restaurant.Code,
			Name:           e.Restaurant.Name,
			Course:         e.Restaurant.Course,
			Address:        e.Restaurant.Address,
			IsOpen:         e.Availability.IsOpen,
			MinutesToClose: e.Availability.MinutesToClose,
			ClosingSoon:    e.ClosingSoon,
		})
	}
	return min
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}

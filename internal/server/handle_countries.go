package server

import (
	"net/http"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// flagHeight is the pixel height of the large flag shown in Flag mode.
const flagHeight = 120

type CountryResponse struct {
	Name         string `json:"name"`
	Capital      string `json:"capital"`
	Code         string `json:"code"`
	Continent    string `json:"continent"`
	FlagURL      string `json:"flagUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func newCountryResponse(c marcopolo.Country, cdn string) CountryResponse {
	return CountryResponse{
		Name:         c.Name,
		Capital:      c.Capital,
		Code:         c.Code,
		Continent:    c.Continent,
		FlagURL:      c.FlagURL(cdn, flagHeight),
		ThumbnailURL: marcopolo.ThumbnailURL(cdn, c.Code),
	}
}

func countryResponses(cs []marcopolo.Country, cdn string) []CountryResponse {
	out := make([]CountryResponse, len(cs))
	for i, c := range cs {
		out[i] = newCountryResponse(c, cdn)
	}
	return out
}

func handleListCountries(cat *catalog.Catalog, cdn string) http.HandlerFunc {
	// The catalog is immutable; build the listing once.
	resp := countryResponses(cat.All(), cdn)

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}

package echolib

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type geoResponse struct {
	IP       string       `json:"ip"`
	Location LocationView `json:"location"`
}

type asnResponse struct {
	IP  string  `json:"ip"`
	ASN ASNView `json:"asn"`
}

func (h httpHandler) handleGeo(w http.ResponseWriter, req *http.Request) {
	ip := ClientIP(req)
	subpath, asJSON := splitJSONSuffix(chi.URLParam(req, "*"))

	record, ok := h.lookup(req.Context(), ip)
	if !ok {
		sendText(w, MessageGeoNotAvailable)

		return
	}

	if subpath != "" {
		sendField(w, subpath, record.Aliased().Walk(strings.Split(subpath, "/")...), asJSON)

		return
	}

	location := record.Location()

	if asJSON {
		encodeJSON(w, geoResponse{IP: ip, Location: location})

		return
	}

	builder := strings.Builder{}

	fmt.Fprintf(&builder, "IP: %s\n", ip)
	fmt.Fprintf(&builder, "Country: %s\n", Stringify(location.Country))
	fmt.Fprintf(&builder, "Region: %s\n", Stringify(location.Region))
	fmt.Fprintf(&builder, "City: %s\n", Stringify(location.City))
	fmt.Fprintf(&builder, "Latitude: %s\n", Stringify(location.Latitude))
	fmt.Fprintf(&builder, "Longitude: %s\n", Stringify(location.Longitude))
	fmt.Fprintf(&builder, "Postal Code: %s\n", Stringify(location.Postal))
	fmt.Fprintf(&builder, "Timezone: %s\n", Stringify(location.Timezone))

	sendText(w, builder.String())
}

func (h httpHandler) handleASN(w http.ResponseWriter, req *http.Request) {
	ip := ClientIP(req)
	subpath, asJSON := splitJSONSuffix(chi.URLParam(req, "*"))

	record, ok := h.lookup(req.Context(), ip)
	if !ok {
		sendText(w, MessageGeoNotAvailable)

		return
	}

	view := record.ASN()

	if subpath != "" {
		// ASN view is flat, so a/b is looked up as a single key
		// and never matches.
		sendField(w, subpath, view.Field(subpath), asJSON)

		return
	}

	if asJSON {
		encodeJSON(w, asnResponse{IP: ip, ASN: view})

		return
	}

	builder := strings.Builder{}

	fmt.Fprintf(&builder, "IP: %s\n", ip)
	fmt.Fprintf(&builder, "ASN: %s\n", Stringify(view.ASN))
	fmt.Fprintf(&builder, "Name: %s\n", Stringify(view.Name))
	fmt.Fprintf(&builder, "Route: %s\n", Stringify(view.Route))
	fmt.Fprintf(&builder, "Type: %s\n", Stringify(view.Type))

	sendText(w, builder.String())
}

// sendField renders a single value. JSON responses carry null for
// absent values but keep falsy ones, text responses collapse both into
// MessageDataNotAvailable.
func sendField(w http.ResponseWriter, subpath string, value interface{}, asJSON bool) {
	if asJSON {
		encodeJSON(w, map[string]interface{}{
			strings.ReplaceAll(subpath, "/", "."): value,
		})

		return
	}

	if IsEmpty(value) {
		sendText(w, MessageDataNotAvailable)

		return
	}

	sendText(w, Stringify(value))
}

package echolib

import (
	"encoding/json"
	"strconv"
)

// Record is a geolocation result as it was returned by a provider: a
// JSON object with arbitrary nested values. Numbers are kept as
// json.Number so they are rendered exactly as a provider sent them.
type Record map[string]interface{}

// Get returns a top-level value or nil if it is absent.
func (r Record) Get(key string) interface{} {
	return r[key]
}

// Walk descends into nested objects key by key. If some key is missing
// or a current value is not an object while the path is not exhausted
// yet, Walk returns nil.
func (r Record) Walk(path ...string) interface{} {
	var current interface{} = map[string]interface{}(r)

	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}

		if current, ok = obj[key]; !ok {
			return nil
		}
	}

	return current
}

// Aliased returns a shallow copy of a record where presentation names
// of LocationView shadow raw provider names. This way /geo/country and
// a country of /geo/json agree.
func (r Record) Aliased() Record {
	rv := make(Record, len(r)+1)

	for k, v := range r {
		rv[k] = v
	}

	if value, ok := r["country_name"]; ok {
		rv["country"] = value
	} else {
		delete(rv, "country")
	}

	return rv
}

// LocationView is a geolocation part of a record which is shown on
// /geo.
type LocationView struct {
	Country   interface{} `json:"country"`
	Region    interface{} `json:"region"`
	City      interface{} `json:"city"`
	Latitude  interface{} `json:"latitude"`
	Longitude interface{} `json:"longitude"`
	Postal    interface{} `json:"postal"`
	Timezone  interface{} `json:"timezone"`
}

func (r Record) Location() LocationView {
	return LocationView{
		Country:   r.Get("country_name"),
		Region:    r.Get("region"),
		City:      r.Get("city"),
		Latitude:  r.Get("latitude"),
		Longitude: r.Get("longitude"),
		Postal:    r.Get("postal"),
		Timezone:  r.Get("timezone"),
	}
}

// ASNView is a projection of a record on autonomous system details.
type ASNView struct {
	ASN   interface{} `json:"asn"`
	Name  interface{} `json:"name"`
	Route interface{} `json:"route"`
	Type  interface{} `json:"type"`
}

// Field returns a value of the view by its JSON name. Unknown names
// give nil.
func (a ASNView) Field(name string) interface{} {
	switch name {
	case "asn":
		return a.ASN
	case "name":
		return a.Name
	case "route":
		return a.Route
	case "type":
		return a.Type
	}

	return nil
}

func (r Record) ASN() ASNView {
	return ASNView{
		ASN:   r.Get("asn"),
		Name:  r.Get("org"),
		Route: r.Get("network"),
		Type:  r.Get("type"),
	}
}

// IsEmpty tells if value should be treated as absent in text
// responses: nil, empty strings and containers, false and zero numbers.
func IsEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		num, err := v.Float64()

		return err == nil && num == 0
	case float64:
		return v == 0
	case int:
		return v == 0
	case map[string]interface{}:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	}

	return false
}

// Stringify renders a value for plain text responses. Absent values
// are shown as None.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return string(data)
}

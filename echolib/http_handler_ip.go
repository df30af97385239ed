package echolib

import "net/http"

type ipResponse struct {
	IP string `json:"ip"`
}

// handleIP serves /, /v4 and /v6. There is no distinction between IP
// families: all of them return the same resolved address.
func (h httpHandler) handleIP(w http.ResponseWriter, req *http.Request) {
	ip := ClientIP(req)

	if _, asJSON := splitJSONSuffix(req.URL.Path); asJSON {
		encodeJSON(w, ipResponse{IP: ip})

		return
	}

	sendText(w, ip)
}

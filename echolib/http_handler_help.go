package echolib

import (
	"io"
	"net/http"
)

const helpPage = `<html>
    <body>
        <pre>
/ - Returns the client's IPv4 address in plain text (same as /v4)
/v4 - Returns the client's IPv4 address in plain text
/v4/json - Returns the client's IPv4 address in JSON format
/v6 - Returns the client's IPv6 address in plain text
/v6/json - Returns the client's IPv6 address in JSON format
/geo - Returns the client's geolocation information in plain text
/geo/json - Returns the client's geolocation information in JSON format
/geo/&lt;field&gt; - Returns the specific geolocation field in plain text
/geo/&lt;field&gt;/json - Returns the specific geolocation field in JSON format
/asn - Returns the client's ASN information in plain text
/asn/json - Returns the client's ASN information in JSON format
/asn/&lt;field&gt; - Returns the specific ASN field in plain text
/asn/&lt;field&gt;/json - Returns the specific ASN field in JSON format
/help - Displays this help information

You can also specify an IP address using the ?ip=IP_ADDRESS parameter for all routes except /help
        </pre>
    </body>
</html>
`

func (h httpHandler) handleHelp(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, helpPage) // nolint: errcheck
}

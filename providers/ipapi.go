package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/9seconds/echoip/echolib"
)

const (
	NameIPAPI = "ipapi"

	DefaultIPAPIBaseURL = "http://ipapi.co"
)

type ipapiProvider struct {
	client  echolib.HTTPClient
	baseURL string
}

func (i ipapiProvider) Name() string {
	return NameIPAPI
}

func (i ipapiProvider) Lookup(ctx context.Context, ip string) (echolib.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.buildURL(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	result := echolib.Record{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	jsonDecoder.UseNumber()

	if err := jsonDecoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("cannot parse a response: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrEmptyResponse
	}

	return result, nil
}

func (i ipapiProvider) buildURL(ip string) string {
	return i.baseURL + "/" + url.PathEscape(ip) + "/json/"
}

// NewIPAPI returns a provider for https://ipapi.co. A response is
// returned as is, keys are documented at https://ipapi.co/api/.
//
// An empty baseURL means DefaultIPAPIBaseURL.
func NewIPAPI(client echolib.HTTPClient, baseURL string) echolib.Provider {
	if baseURL == "" {
		baseURL = DefaultIPAPIBaseURL
	}

	return ipapiProvider{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

package watchdog

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
)

//------------------------------------------------------------------------------

const genericUnsuccessfulResponse = "Unsuccessful response from node."

//------------------------------------------------------------------------------

// sendRequest performs a single HTTP exchange against the server. When body
// is non-nil it is marshaled as the JSON request payload. When response is
// non-nil the 200 response body is unmarshaled into it; otherwise the body
// is ignored. A non-200 status becomes a *RequestError whose message carries
// the response body text when one is present. Transport failures (DNS,
// connection refused, timeout) surface untouched.
func (c *Client) sendRequest(method string, path string, body interface{}, response interface{}) error {
	var payload []byte
	var err error

	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	err = c.httpClient.DoTimeout(req, resp, c.timeout)
	if err != nil {
		return err
	}

	statusCode := resp.StatusCode()
	if statusCode != fasthttp.StatusOK {
		text := strings.TrimSpace(string(resp.Body()))
		if len(text) == 0 {
			text = genericUnsuccessfulResponse
		}
		return newRequestError(text, statusCode)
	}

	if response != nil {
		err = json.Unmarshal(resp.Body(), response)
		if err != nil {
			return err
		}
	}
	return nil
}

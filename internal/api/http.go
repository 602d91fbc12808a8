package api

import (
	"fmt"
	"net/http"
)

// HttpClient is the client used for fetching remote data files. It
// identifies itself so that server operators can tell the traffic
// apart from browsers.
var HttpClient = &TabulateHttpClient{}

type TabulateHttpClient struct {
	http.Client
}

func (c *TabulateHttpClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "tabulate (+https://github.com/tabulatehq/tabulate)")
	resp, err := c.Client.Do(req)
	if resp == nil && err == nil {
		panic(fmt.Errorf("no response and no error %v", req))
	}

	return resp, err
}

func (c *TabulateHttpClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return &http.Response{}, err
	}
	return c.Do(req)
}

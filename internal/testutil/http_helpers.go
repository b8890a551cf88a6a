package testutil

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

// Response is a captured HTTP response.
type Response struct {
	Status   int
	Location string
	Body     string
}

// HTTPGet sends a GET request and captures the response.
func HTTPGet(t testing.TB, client *http.Client, target string) Response {
	t.Helper()
	resp, err := client.Get(target)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	return capture(t, resp)
}

// HTTPPostForm sends a form POST and captures the response.
func HTTPPostForm(t testing.TB, client *http.Client, target string, values url.Values) Response {
	t.Helper()
	resp, err := client.Post(target, "application/x-www-form-urlencoded", strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	return capture(t, resp)
}

// capture reads and closes the response body.
func capture(t testing.TB, resp *http.Response) Response {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return Response{
		Status:   resp.StatusCode,
		Location: resp.Header.Get("Location"),
		Body:     string(body),
	}
}

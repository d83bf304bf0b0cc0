package config

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Resource wraps a configuration stream read from a local file or fetched
// over http/https.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the location this resource was opened from.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Open a resource. Locations without a scheme are treated as local paths;
// http and https URLs are fetched with the default client. The caller must
// close the returned resource.
func OpenResource(location string) (*Resource, error) {
	// Windows style separators are accepted for local paths
	u, err := url.Parse(strings.Replace(location, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("config: invalid location '%s': %s", location, err)
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, fmt.Errorf("config: could not open '%s': %s", location, err)
		}
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("config: could not fetch '%s': %s", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("config: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("config: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        u,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	u, err := url.Parse(name)
	if err != nil {
		u = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        u,
	}
}

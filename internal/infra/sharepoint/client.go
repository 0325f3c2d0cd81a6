// Package sharepoint implements the document library interface against the
// SharePoint REST file API of one site collection.
package sharepoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the file surface of a single SharePoint site. It only
// covers the three operations the report flows need: list a folder, download
// a file and upload (overwrite) a file.
type Client struct {
	httpClient *http.Client
	siteURL    string
	library    string
	username   string
	password   string
}

// NewClient returns a client for the given site URL (for example
// https://example.sharepoint.com/sites/CenterforTrivsel) and document
// library display name.
func NewClient(siteURL, library, username, password string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		siteURL:    strings.TrimRight(siteURL, "/"),
		library:    library,
		username:   username,
		password:   password,
	}
}

// ListFiles returns the names of the files directly inside the folder.
func (c *Client) ListFiles(ctx context.Context, folder string) ([]string, error) {
	u := fmt.Sprintf("%s/_api/web/GetFolderByServerRelativeUrl('%s')/Files?$select=Name",
		c.siteURL, restPath(c.folderPath(folder)))
	data, err := c.do(ctx, http.MethodGet, u, nil, "")
	if err != nil {
		return nil, fmt.Errorf("error listing folder %q: %w", folder, err)
	}

	var payload struct {
		Value []struct {
			Name string `json:"Name"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("error decoding folder listing for %q: %w", folder, err)
	}
	names := make([]string, len(payload.Value))
	for i, f := range payload.Value {
		names[i] = f.Name
	}
	return names, nil
}

// Download fetches the raw bytes of a named file.
func (c *Client) Download(ctx context.Context, folder, name string) ([]byte, error) {
	u := fmt.Sprintf("%s/_api/web/GetFileByServerRelativeUrl('%s/%s')/$value",
		c.siteURL, restPath(c.folderPath(folder)), restPath(name))
	data, err := c.do(ctx, http.MethodGet, u, nil, "")
	if err != nil {
		return nil, fmt.Errorf("error downloading %q from %q: %w", name, folder, err)
	}
	return data, nil
}

// Upload stores content under the name in the folder, overwriting any
// existing file.
func (c *Client) Upload(ctx context.Context, folder, name string, content []byte) error {
	u := fmt.Sprintf("%s/_api/web/GetFolderByServerRelativeUrl('%s')/Files/add(url='%s',overwrite=true)",
		c.siteURL, restPath(c.folderPath(folder)), restPath(name))
	if _, err := c.do(ctx, http.MethodPost, u, bytes.NewReader(content), "application/octet-stream"); err != nil {
		return fmt.Errorf("error uploading %q to %q: %w", name, folder, err)
	}
	return nil
}

func (c *Client) folderPath(folder string) string {
	return c.library + "/" + strings.Trim(folder, "/")
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json;odata=nometadata")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling document library: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading document library response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("document library returned %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}
	return data, nil
}

// restPath escapes a server-relative path for use inside a quoted REST
// argument.
func restPath(p string) string {
	p = strings.ReplaceAll(p, "'", "''")
	return strings.ReplaceAll(p, " ", "%20")
}

package webstore

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"slices"
)

// Upload streams the packaged artifact to the store, replacing the current
// draft of the item. The token is refreshed first if none is held. Success
// requires HTTP 200 and the SUCCESS upload state; anything else surfaces the
// store's diagnostics.
func (c *Client) Upload(ctx context.Context, artifactPath string) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	f, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat artifact: %w", err)
	}

	endpoint := c.uploadURL.JoinPath("items", c.cfg.Credentials.ExtensionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint.String(), f)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", "application/zip")
	c.setAuthHeaders(req)

	var item Item
	if err := c.doJSON(req, &item); err != nil {
		return err
	}
	if item.UploadState != UploadStateSuccess {
		return &UploadStateError{State: item.UploadState, Errors: item.ItemError}
	}
	return nil
}

// Publish submits the current draft for review. target selects the audience;
// only TargetTesters adds the trusted-tester query parameter. Success
// requires HTTP 200 and an OK entry in the response status list.
func (c *Client) Publish(ctx context.Context, target PublishTarget) error {
	if target != TargetDefault && target != TargetTesters {
		return fmt.Errorf("unknown publish target %q", target)
	}
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL.JoinPath("items", c.cfg.Credentials.ExtensionID, "publish")
	if target == TargetTesters {
		q := endpoint.Query()
		q.Set("publishTarget", "trustedTesters")
		endpoint.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("build publish request: %w", err)
	}
	c.setAuthHeaders(req)

	var resp PublishResponse
	if err := c.doJSON(req, &resp); err != nil {
		return err
	}
	if !slices.Contains(resp.Status, statusOK) {
		return &PublishStatusError{Status: resp.Status, Detail: resp.StatusDetail}
	}
	return nil
}

// FetchItem retrieves the draft projection of the item's metadata.
func (c *Client) FetchItem(ctx context.Context) (Item, error) {
	if err := c.ensureToken(ctx); err != nil {
		return Item{}, err
	}

	endpoint := c.baseURL.JoinPath("items", c.cfg.Credentials.ExtensionID)
	q := endpoint.Query()
	q.Set("projection", "DRAFT")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return Item{}, fmt.Errorf("build item request: %w", err)
	}
	c.setAuthHeaders(req)

	var item Item
	if err := c.doJSON(req, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

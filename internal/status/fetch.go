// Copyright (c) 2022 EPAM Systems, Inc.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const DefaultURL = "https://status.duo.com/api/v2/components.json"

// FetchError is returned when the status page could not be reached or
// answered with something that is not a components document.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Fetcher struct {
	URL    string
	client *resty.Client
}

func NewFetcher(url string, timeout time.Duration) *Fetcher {
	client := resty.New().
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Fetcher{URL: url, client: client}
}

type componentsPage struct {
	Components []map[string]interface{} `json:"components"`
}

// Fetch performs a single GET of the components feed. A document without a
// components key yields an empty list and no error.
func (f *Fetcher) Fetch(ctx context.Context) ([]Component, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.URL)
	if err != nil {
		return nil, &FetchError{URL: f.URL, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FetchError{URL: f.URL, Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}

	var page componentsPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, &FetchError{URL: f.URL, Err: fmt.Errorf("malformed response: %w", err)}
	}

	components := make([]Component, 0, len(page.Components))
	for _, fields := range page.Components {
		components = append(components, FromKeyedFields(fields))
	}
	logrus.Infof("Collected %d components", len(components))
	return components, nil
}

// FetchOrEmpty never fails: a failed fetch is reported to w and the log, and
// an empty list is returned.
func (f *Fetcher) FetchOrEmpty(ctx context.Context, w io.Writer) []Component {
	components, err := f.Fetch(ctx)
	if err != nil {
		logrus.Errorf("Fetch of status components failed: %s", err)
		fmt.Fprintf(w, "An error occurred while requesting %q.\n", f.URL)
		return []Component{}
	}
	return components
}

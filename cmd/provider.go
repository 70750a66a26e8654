package cmd

import (
	"os"

	"github.com/agilestacks/hub-utils/duo-status/internal/status"
)

func defaultStatusURL() string {
	if url := os.Getenv("DUO_STATUS_URL"); url != "" {
		return url
	}
	return status.DefaultURL
}

func newFetcher() *status.Fetcher {
	return status.NewFetcher(StatusURL, Timeout)
}

// Copyright (c) 2022 EPAM Systems, Inc.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package status

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ExtractComponents returns the records named deploymentID followed by the
// members of the last such group, both in feed order. Matching is exact and
// case sensitive. A record can be returned twice if it is both a named group
// and a member of it.
func ExtractComponents(records []Component, deploymentID string) ([]Component, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no status components", ErrInvalidArgument)
	}
	if deploymentID == "" {
		return nil, fmt.Errorf("%w: deployment ID is required", ErrInvalidArgument)
	}

	logrus.Infof("Extracting components for '%s'", deploymentID)

	matches := make([]Component, 0)
	var group []string
	for _, record := range records {
		if record.Name == deploymentID {
			logrus.Infof("Found match for %s", record.Name)
			matches = append(matches, record)
			group = record.Components
			logrus.Infof("Component group: %v", group)
		}
	}

	if len(group) > 0 {
		members := make(map[string]struct{}, len(group))
		for _, id := range group {
			members[id] = struct{}{}
		}
		for _, record := range records {
			if _, ok := members[record.ID]; ok {
				logrus.Infof("Found match for %s", record.ID)
				matches = append(matches, record)
			}
		}
	}

	logrus.Infof("Found %d components matching '%s'", len(matches), deploymentID)
	return matches, nil
}

// Groups returns the group records of the feed, i.e. the deployments.
func Groups(records []Component) []Component {
	groups := make([]Component, 0)
	for _, record := range records {
		if record.IsGroup() {
			groups = append(groups, record)
		}
	}
	return groups
}

// Match returns the records whose fields equal every non-empty field of
// filter. Only ID, Name, Status and GroupID are compared.
func Match(records []Component, filter Component) []Component {
	matches := make([]Component, 0)
	for _, record := range records {
		if filter.ID != "" && record.ID != filter.ID {
			continue
		}
		if filter.Name != "" && record.Name != filter.Name {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		if filter.GroupID != "" && record.GroupID != filter.GroupID {
			continue
		}
		matches = append(matches, record)
	}
	return matches
}

// Copyright (c) 2022 EPAM Systems, Inc.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package status

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindLeaf  Kind = "leaf"
	KindGroup Kind = "group"
)

// Component is a single entry of the status page components feed. Group
// records reference their children by ID in Components.
type Component struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	GroupID     string     `json:"group_id,omitempty"`
	Components  []string   `json:"components,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Kind        Kind       `json:"kind"`
}

func (c Component) IsGroup() bool {
	return c.Kind == KindGroup
}

func (c Component) String() string {
	return fmt.Sprintf("%s status: %s", c.Name, c.Status)
}

// FromKeyedFields builds a Component out of a decoded JSON object. Unknown
// keys are ignored and values of an unexpected type are left unset.
func FromKeyedFields(fields map[string]interface{}) Component {
	var c Component
	group := false
	for key, value := range fields {
		switch key {
		case "id":
			c.ID, _ = value.(string)
		case "name":
			c.Name, _ = value.(string)
		case "status":
			c.Status, _ = value.(string)
		case "description":
			c.Description, _ = value.(string)
		case "group_id":
			c.GroupID, _ = value.(string)
		case "group":
			group, _ = value.(bool)
		case "updated_at":
			if s, ok := value.(string); ok {
				if t, err := time.Parse(time.RFC3339, s); err == nil {
					c.UpdatedAt = &t
				}
			}
		case "components":
			switch ids := value.(type) {
			case []string:
				c.Components = append(c.Components, ids...)
			case []interface{}:
				for _, id := range ids {
					if s, ok := id.(string); ok {
						c.Components = append(c.Components, s)
					}
				}
			}
		}
	}
	c.Kind = kindOf(group, c.Components)
	return c
}

// FromAssignmentStrings builds a Component out of "key=value" pairs, e.g.
// []string{"name=DUO63", "status=operational"}. Pairs without "=" are
// skipped. A components value is a ";" separated list of IDs.
func FromAssignmentStrings(pairs []string) Component {
	var c Component
	group := false
	for _, pair := range pairs {
		vals := strings.SplitN(pair, "=", 2)
		if len(vals) != 2 {
			continue
		}
		key, value := strings.ToLower(strings.TrimSpace(vals[0])), vals[1]
		switch key {
		case "id":
			c.ID = value
		case "name":
			c.Name = value
		case "status":
			c.Status = value
		case "description":
			c.Description = value
		case "group_id":
			c.GroupID = value
		case "group":
			group = value == "true"
		case "components":
			for _, id := range strings.Split(value, ";") {
				if id != "" {
					c.Components = append(c.Components, id)
				}
			}
		}
	}
	c.Kind = kindOf(group, c.Components)
	return c
}

func kindOf(group bool, components []string) Kind {
	if group || len(components) > 0 {
		return KindGroup
	}
	return KindLeaf
}

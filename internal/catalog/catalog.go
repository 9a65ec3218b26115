// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"errors"
	"fmt"
)

// ErrTopicIndex is returned by Lookup when the index is outside the catalog.
var ErrTopicIndex = errors.New("topic index out of range")

// =============================================================================
// CATEGORY
// =============================================================================

// Category identifies one of the two topic groups.
type Category int

const (
	CategoryTechnical Category = iota
	CategoryNonTechnical
)

// Label returns the group heading shown above the category's topics.
func (c Category) Label() string {
	switch c {
	case CategoryTechnical:
		return "Technical Challenges"
	case CategoryNonTechnical:
		return "Non-Technical Challenges"
	default:
		return "Unknown"
	}
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog is the read-only topic taxonomy. Duplicate topics are allowed.
type Catalog struct {
	technical    []string
	nonTechnical []string
}

// Option is a single selectable topic together with its category.
type Option struct {
	Category Category
	Topic    string
}

// Group is an ordered category with its topics.
type Group struct {
	Category Category
	Topics   []string
}

var defaultCatalog = New(
	[]string{
		"Navigating Legacy/Undocumented Codebases with High Technical Debt",
		"Effective Debugging and Root Cause Analysis in Distributed Systems",
		"Performance Bottleneck Identification and Optimization",
		"Implementing Robust Error Handling, Retries, and Idempotency in Production Systems",
		"Designing Scalable and Resilient Architectures Under Evolving Requirements",
		"Managing and Reducing System-Wide Technical Debt Effectively",
		"Cross-Service Data Consistency and Integrity in Complex Distributed Systems",
		"Optimizing Cloud Costs and Infrastructure Efficiency without Sacrificing Performance/Reliability",
	},
	[]string{
		"Effective Communication and Asking for Help Without Feeling Inadequate",
		"Prioritization and Time Management in a Fast-Paced, Shifting Environment",
		"Navigating Ambiguity and Unclear Requirements",
		"Receiving and Acting on Constructive Feedback",
		"Effective Cross-Team Collaboration and Dependency Management",
		"Mentoring and Elevating Junior Engineers While Managing Own Technical Load",
		"Managing Stakeholder Expectations and Communicating Technical Trade-offs to Non-Technical Audiences",
	},
)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from the given topic lists. The slices are copied.
func New(technical, nonTechnical []string) *Catalog {
	return &Catalog{
		technical:    clone(technical),
		nonTechnical: clone(nonTechnical),
	}
}

// Technical returns a copy of the technical topics in order.
func (c *Catalog) Technical() []string {
	return clone(c.technical)
}

// NonTechnical returns a copy of the non-technical topics in order.
func (c *Catalog) NonTechnical() []string {
	return clone(c.nonTechnical)
}

// Groups returns both categories in display order.
func (c *Catalog) Groups() []Group {
	return []Group{
		{Category: CategoryTechnical, Topics: c.Technical()},
		{Category: CategoryNonTechnical, Topics: c.NonTechnical()},
	}
}

// Options flattens the catalog into picker order: technical first.
func (c *Catalog) Options() []Option {
	opts := make([]Option, 0, c.Len())
	for _, t := range c.technical {
		opts = append(opts, Option{Category: CategoryTechnical, Topic: t})
	}
	for _, t := range c.nonTechnical {
		opts = append(opts, Option{Category: CategoryNonTechnical, Topic: t})
	}
	return opts
}

// Len returns the total number of topics.
func (c *Catalog) Len() int {
	return len(c.technical) + len(c.nonTechnical)
}

// Contains reports whether topic is one of the catalog's topics.
func (c *Catalog) Contains(topic string) bool {
	for _, opt := range c.Options() {
		if opt.Topic == topic {
			return true
		}
	}
	return false
}

// Lookup resolves a 1-based index in Options order.
func (c *Catalog) Lookup(n int) (Option, error) {
	if n < 1 || n > c.Len() {
		return Option{}, fmt.Errorf("%w: %d (have %d topics)", ErrTopicIndex, n, c.Len())
	}
	return c.Options()[n-1], nil
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Package fixtures provides the hand-authored demo data behind driven.Catalog.
// Every accessor builds fresh values, so callers may mutate what they receive.
package fixtures

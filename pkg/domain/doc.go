// Package domain contains the core types shared by the converter, the API
// and the CLI: the two synchronized fields, their states, edits applied to
// them and one-shot conversion results. These types are intentionally free
// of infrastructure concerns.
package domain

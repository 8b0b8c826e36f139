// Package domain contains the bridge RNA design model and engine.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the filesystem, or any UI. It owns the 177-nt wild-type template, validation of the
// target/donor sites, region assembly, and advisory warnings. Infra/adapters and
// formatters map into/from these types.
package domain

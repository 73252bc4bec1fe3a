// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep names, namespaces, and file layout in one place.
package meta

const (
	// Project Identity
	AppName   = "hostenv"
	Slug      = "hostenv"
	EnvPrefix = "HOSTENV"

	// Registry Layout
	DefaultPluginNamespace  = "$docsify"
	DefaultFeatureNamespace = "mustache"
	DataKey                 = "data"

	// Environment Detection
	BrevSuffix = "brevlab.com"

	// Directory Layout
	HomeDir             = ".hostenv"
	ConfigFileName      = "hostenv.yaml"
	DefaultRegistryFile = ".hostenv/registry.json"
	DefaultTemplate     = "docsify.js"
)

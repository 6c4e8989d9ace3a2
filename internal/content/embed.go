package content

import "embed"

// defaultsFS holds the catalog shipped with the binary.
//
//go:embed defaults/catalog.yaml
var defaultsFS embed.FS

// DefaultPath is the location of the shipped catalog inside DefaultFS.
const DefaultPath = "defaults/catalog.yaml"

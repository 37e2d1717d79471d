// Package storage holds the image stores behind a narrow upload interface
// so services and tests never touch a concrete backend.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// ObjectStore uploads a blob under a path and returns a publicly
// resolvable URL for it.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
}

// ObjectPath builds a collision-resistant path: namespaced by entity type,
// prefixed with a millisecond timestamp, keeping the original filename.
func ObjectPath(namespace, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return fmt.Sprintf("%s/%d-%s", namespace, time.Now().UnixMilli(), name)
}

// Package rest implements the generic REST endpoint the resource clients
// are built on: resource path resolution, response decoding, and the CRUD
// operations shared by every resource.
package rest

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// nestingSeparator marks a sub-resource path template: "payments_refunds"
// resolves to "payments/{parentID}/refunds".
const nestingSeparator = "_"

// ResolvePath computes the resource path for a template. Templates without
// the nesting marker are returned verbatim. Nested templates require a
// parent id; resolution fails with paykit.ErrMissingParentID otherwise.
func ResolvePath(template, parentID string) (string, error) {
	if !strings.Contains(template, nestingSeparator) {
		return template, nil
	}

	parent, child, _ := strings.Cut(template, nestingSeparator)

	if strings.TrimSpace(parentID) == "" {
		return "", fmt.Errorf("%w: %s", paykit.ErrMissingParentID, template)
	}

	return parent + "/" + url.PathEscape(parentID) + "/" + child, nil
}

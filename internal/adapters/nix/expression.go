// Package nix renders the fetch catalog as a Nix expression.
package nix

import (
	"fmt"
	"strings"

	"go.trai.ch/yarnix/internal/core/domain"
)

// offlineCacheName is the linkFarm name downstream derivations refer to.
const offlineCacheName = "offline"

// Render produces the declarative catalog expression: a function taking the
// fetch primitives as parameters and returning a linkFarm with one block per
// descriptor, in catalog order.
func Render(descriptors []domain.FetchDescriptor) string {
	var b strings.Builder

	b.WriteString("{ fetchgitTarball, fetchurl, linkFarm }:\n\n")
	fmt.Fprintf(&b, "linkFarm %q [\n", offlineCacheName)

	for _, desc := range descriptors {
		writeDescriptor(&b, desc)
	}

	b.WriteString("]\n")
	return b.String()
}

func writeDescriptor(b *strings.Builder, desc domain.FetchDescriptor) {
	b.WriteString("  {\n")
	fmt.Fprintf(b, "    name = %q;\n", desc.Name)

	switch desc.Kind {
	case domain.SourceControlFetch:
		b.WriteString("    path = fetchgitTarball {\n")
		fmt.Fprintf(b, "      url = %q;\n", desc.URL)
		fmt.Fprintf(b, "      rev = %q;\n", desc.Rev)
		fmt.Fprintf(b, "      sha256 = %q;\n", desc.SHA256)
	default:
		b.WriteString("    path = fetchurl {\n")
		fmt.Fprintf(b, "      url = %q;\n", desc.URL)
		fmt.Fprintf(b, "      sha1 = %q;\n", desc.SHA1)
	}

	b.WriteString("    };\n")
	b.WriteString("  }\n")
}

package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	const mod = "cgmlst-dists/"
	frontends := []string{
		mod + "internal/app", mod + "internal/cli", mod + "internal/config", mod + "cmd/",
	}
	kernel := append([]string{
		mod + "internal/engine", mod + "internal/writers",
		mod + "internal/alleles", mod + "internal/source",
		mod + "internal/logging", mod + "internal/metrics",
	}, frontends...)

	bans := map[string][]string{
		mod + "internal/distance":  kernel,
		mod + "internal/partition": kernel,
		mod + "internal/profile":   kernel,
		mod + "internal/matrix":    kernel,
		mod + "internal/engine": append([]string{
			mod + "internal/writers", mod + "internal/alleles", mod + "internal/source",
		}, frontends...),
		mod + "internal/writers": append([]string{
			mod + "internal/engine", mod + "internal/alleles", mod + "internal/source",
			mod + "internal/resource",
		}, frontends...),
		mod + "internal/alleles": append([]string{
			mod + "internal/engine", mod + "internal/writers", mod + "internal/source",
		}, frontends...),
		mod + "internal/source": append([]string{
			mod + "internal/engine", mod + "internal/writers", mod + "internal/alleles",
		}, frontends...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, mod) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, mod) {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

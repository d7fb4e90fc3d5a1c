// Package migrations embeds the numbered SQL patches that define the local
// store schema. Patches are additive only: they add tables and columns,
// never remove them, and each is safe to re-run.
package migrations

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var fs embed.FS

// Patch is a single schema patch.
type Patch struct {
	Version int
	Name    string
	SQL     string
}

// Patches returns all embedded patches ordered by version. File names must
// be of the form NNN_name.sql.
func Patches() ([]Patch, error) {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var patches []Patch
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: name must be NNN_name.sql", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad version prefix: %w", name, err)
		}
		sql, err := fs.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		patches = append(patches, Patch{Version: version, Name: name, SQL: string(sql)})
	}

	sort.Slice(patches, func(i, j int) bool { return patches[i].Version < patches[j].Version })
	return patches, nil
}

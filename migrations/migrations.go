// Package migrations embeds the SQL schema files.
package migrations

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

// Direction selects the migration files to apply.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Script is a single migration file.
type Script struct {
	Name string
	SQL  string
}

// Scripts returns the files for the direction: ascending for up, descending for down.
func Scripts(dir Direction) ([]Script, error) {
	names, err := fs.Glob(files, "*."+string(dir)+".sql")
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}

	scripts := make([]Script, 0, len(names))
	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, Script{Name: strings.TrimSuffix(name, ".sql"), SQL: string(body)})
	}
	return scripts, nil
}

package tags

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu      sync.RWMutex
	allTags = make(map[IFD]map[uint16]TagDef)
)

// RegisterTagTable registers the tag definitions of one directory.
// Definitions already registered for the same ID are replaced.
func RegisterTagTable(ifd IFD, defs []TagDef) {
	mu.Lock()
	defer mu.Unlock()

	table, ok := allTags[ifd]
	if !ok {
		table = make(map[uint16]TagDef, len(defs))
		allTags[ifd] = table
	}
	for _, def := range defs {
		table[def.ID] = def
	}
}

// GetTag retrieves a tag definition by directory and ID
func GetTag(ifd IFD, id uint16) (TagDef, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if table, ok := allTags[ifd]; ok {
		tag, found := table[id]
		return tag, found
	}
	return TagDef{}, false
}

// Label returns the descriptive name of a code, e.g. "Image Make".
// Unregistered tags get a hex placeholder name.
func Label(code Code) string {
	if def, ok := GetTag(code.IFD, code.ID); ok && def.Name != "" {
		return code.IFD.Group() + " " + def.Name
	}
	return fmt.Sprintf("%s Tag 0x%04X", code.IFD.Group(), code.ID)
}

// MapValue applies the enum mapping of a tag to a raw integer value
func MapValue(code Code, raw int) (string, bool) {
	def, ok := GetTag(code.IFD, code.ID)
	if !ok || len(def.Values) == 0 {
		return "", false
	}
	mapped, ok := def.Values[raw]
	return mapped, ok
}

// Table is the registered definitions of one directory, sorted by ID
type Table struct {
	IFD  IFD
	Tags []TagDef
}

// Tables returns every registered table in directory order
func Tables() []Table {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Table, 0, len(allTags))
	for ifd, table := range allTags {
		t := Table{IFD: ifd, Tags: make([]TagDef, 0, len(table))}
		for _, def := range table {
			t.Tags = append(t.Tags, def)
		}
		sort.Slice(t.Tags, func(i, j int) bool { return t.Tags[i].ID < t.Tags[j].ID })
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IFD < out[j].IFD })
	return out
}

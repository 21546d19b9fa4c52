// Package catalog resolves category and subcategory lookups against immutable
// two- and three-level category tables.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"ekthaa/internal/domain"
)

const (
	DefaultIcon  = "fa-box"
	DefaultColor = "#9ca3af"
)

// Table names.
const (
	BusinessTable  = "business"
	InventoryTable = "inventory"
)

// Category is a level-1 entry and its level-2 options.
type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Icon   string   `json:"icon,omitempty"`
	Color  string   `json:"color,omitempty"`
	Level2 []string `json:"level2"`
}

// Sector groups level-1 categories. Two-level tables have a single sector
// with an empty ID.
type Sector struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Icon       string     `json:"icon,omitempty"`
	Categories []Category `json:"categories"`
}

// Table is a loaded category table. Treat it as read-only.
type Table struct {
	Name    string   `json:"name"`
	Sectors []Sector `json:"sectors"`

	byID   map[string]int
	byName map[string]int
	flat   []Level1
}

type tableFile struct {
	Name       string     `json:"name"`
	Sectors    []Sector   `json:"sectors"`
	Categories []Category `json:"categories"`
}

// Load decodes a category table. A file may list either sectors or, for a
// two-level table, top-level categories.
func Load(r io.Reader) (*Table, error) {
	var f tableFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding category table: %w", err)
	}
	t := &Table{Name: f.Name, Sectors: f.Sectors}
	if len(f.Categories) > 0 {
		t.Sectors = append(t.Sectors, Sector{Categories: f.Categories})
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile loads a table from fsys.
func LoadFile(fsys fs.FS, name string) (*Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening category table %s: %w", name, err)
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

func (t *Table) index() error {
	t.byID = make(map[string]int)
	t.byName = make(map[string]int)
	t.flat = nil
	for si := range t.Sectors {
		s := &t.Sectors[si]
		for ci := range s.Categories {
			c := &s.Categories[ci]
			if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
				return fmt.Errorf("category table %q: sector %q has a category with empty id or name", t.Name, s.ID)
			}
			if _, dup := t.byID[c.ID]; dup {
				return fmt.Errorf("category table %q: duplicate category id %q", t.Name, c.ID)
			}
			icon := c.Icon
			if icon == "" {
				icon = s.Icon
			}
			color := c.Color
			if color == "" {
				color = DefaultColor
			}
			if icon == "" {
				icon = DefaultIcon
			}
			level2 := c.Level2
			if level2 == nil {
				level2 = []string{}
			}
			t.byID[c.ID] = len(t.flat)
			if _, seen := t.byName[c.Name]; !seen {
				t.byName[c.Name] = len(t.flat)
			}
			t.flat = append(t.flat, Level1{
				SectorID:      s.ID,
				SectorName:    s.Name,
				ID:            c.ID,
				Name:          c.Name,
				Icon:          icon,
				Color:         color,
				Level2Options: level2,
			})
		}
	}
	return nil
}

//go:embed data/*.json
var dataFS embed.FS

var (
	loadOnce  sync.Once
	business  *Table
	inventory *Table
	loadErr   error
)

func loadEmbedded() {
	business, loadErr = LoadFile(dataFS, "data/business.json")
	if loadErr != nil {
		return
	}
	inventory, loadErr = LoadFile(dataFS, "data/inventory.json")
}

func mustEmbedded() {
	loadOnce.Do(loadEmbedded)
	if loadErr != nil {
		panic(loadErr)
	}
}

// Business returns the built-in three-level business category table.
func Business() *Table {
	mustEmbedded()
	return business
}

// Inventory returns the built-in two-level product category table.
func Inventory() *Table {
	mustEmbedded()
	return inventory
}

// TableByName resolves "business" or "inventory".
func TableByName(name string) (*Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BusinessTable:
		return Business(), nil
	case InventoryTable:
		return Inventory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTable, name)
	}
}

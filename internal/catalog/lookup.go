package catalog

import "strings"

// Level1 is a flattened level-1 category with its resolved presentation.
type Level1 struct {
	SectorID      string   `json:"sector_id,omitempty"`
	SectorName    string   `json:"sector_name,omitempty"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Color         string   `json:"color"`
	Level2Options []string `json:"level2_options"`
}

// SearchResult is one match from Search. Level is 1 for a category match and
// 2 for a subcategory match; Subcategory is empty for level 1.
type SearchResult struct {
	Level       int    `json:"level"`
	Category    string `json:"category"`
	CategoryID  string `json:"category_id"`
	Subcategory string `json:"subcategory,omitempty"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// AllLevel1 lists every level-1 category in declaration order.
func (t *Table) AllLevel1() []Level1 {
	out := make([]Level1, len(t.flat))
	copy(out, t.flat)
	return out
}

// Level2Options returns the subcategories of id, or an empty slice.
func (t *Table) Level2Options(id string) []string {
	i, ok := t.byID[id]
	if !ok {
		return []string{}
	}
	opts := t.flat[i].Level2Options
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// ByID returns the level-1 category with the given id.
func (t *Table) ByID(id string) (Level1, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Level1{}, false
	}
	return t.flat[i], true
}

// ByName returns the level-1 category whose name matches exactly.
func (t *Table) ByName(name string) (Level1, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Level1{}, false
	}
	return t.flat[i], true
}

// Icon resolves a stored category name to its icon. Matching is exact and
// case-sensitive; anything else gets DefaultIcon.
func (t *Table) Icon(name string) string {
	if c, ok := t.ByName(name); ok {
		return c.Icon
	}
	return DefaultIcon
}

// Color resolves a stored category name to its color, or DefaultColor.
func (t *Table) Color(name string) string {
	if c, ok := t.ByName(name); ok {
		return c.Color
	}
	return DefaultColor
}

// HasOption reports whether value is a level-2 option of category id.
func (t *Table) HasOption(id, value string) bool {
	i, ok := t.byID[id]
	if !ok {
		return false
	}
	for _, o := range t.flat[i].Level2Options {
		if o == value {
			return true
		}
	}
	return false
}

// Search matches query case-insensitively against level-1 and level-2 names.
// Each match yields one entry; an empty query matches everything.
func (t *Table) Search(query string) []SearchResult {
	q := strings.ToLower(query)
	results := []SearchResult{}
	for i := range t.flat {
		c := &t.flat[i]
		if strings.Contains(strings.ToLower(c.Name), q) {
			results = append(results, SearchResult{
				Level: 1, Category: c.Name, CategoryID: c.ID, Icon: c.Icon, Color: c.Color,
			})
		}
		for _, sub := range c.Level2Options {
			if strings.Contains(strings.ToLower(sub), q) {
				results = append(results, SearchResult{
					Level: 2, Category: c.Name, CategoryID: c.ID, Subcategory: sub, Icon: c.Icon, Color: c.Color,
				})
			}
		}
	}
	return results
}

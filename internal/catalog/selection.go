package catalog

// Selection is the state of a cascading category picker.
type Selection struct {
	Level1 string `json:"level1"`
	Level2 string `json:"level2"`
}

// Action changes a Selection.
type Action interface {
	isAction()
}

// SelectLevel1 picks a level-1 category by id.
type SelectLevel1 struct{ ID string }

// SelectLevel2 picks a subcategory of the current level-1 category.
type SelectLevel2 struct{ Value string }

// Reset clears the selection.
type Reset struct{}

func (SelectLevel1) isAction() {}
func (SelectLevel2) isAction() {}
func (Reset) isAction()        {}

// Reduce applies a to s. Choosing a new level-1 category keeps the current
// subcategory only if the new category offers it. A subcategory outside the
// current options leaves the state unchanged. Selecting an empty level-2
// value clears it.
func Reduce(t *Table, s Selection, a Action) Selection {
	switch a := a.(type) {
	case SelectLevel1:
		next := Selection{Level1: a.ID}
		if s.Level2 != "" && t.HasOption(a.ID, s.Level2) {
			next.Level2 = s.Level2
		}
		return next
	case SelectLevel2:
		if a.Value == "" {
			return Selection{Level1: s.Level1}
		}
		if !t.HasOption(s.Level1, a.Value) {
			return s
		}
		return Selection{Level1: s.Level1, Level2: a.Value}
	case Reset:
		return Selection{}
	default:
		return s
	}
}

// Valid reports whether s is a consistent selection for t: level-2 is empty
// or one of the level-1 category's options.
func (s Selection) Valid(t *Table) bool {
	if s.Level1 == "" {
		return s.Level2 == ""
	}
	if _, ok := t.ByID(s.Level1); !ok {
		return false
	}
	return s.Level2 == "" || t.HasOption(s.Level1, s.Level2)
}

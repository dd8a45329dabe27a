package page

import "github.com/glabrego/timeline-cli/internal/source"

// Item is one selectable source in the dropdown menu.
type Item struct {
	ID       string
	Label    string
	Selected bool
}

// AriaSelected is the aria-selected attribute value of the item.
func (i Item) AriaSelected() string {
	if i.Selected {
		return "true"
	}
	return "false"
}

// Dropdown is the open/closed source picker. At most one item is selected.
type Dropdown struct {
	items []Item
	open  bool
	label string
}

// NewDropdown lists descriptors in registry order with nothing selected.
func NewDropdown(descriptors []source.Descriptor) *Dropdown {
	items := make([]Item, 0, len(descriptors))
	for _, d := range descriptors {
		items = append(items, Item{ID: d.ID, Label: d.DisplayName})
	}
	return &Dropdown{items: items}
}

func (d *Dropdown) Toggle() { d.open = !d.open }
func (d *Dropdown) Open()   { d.open = true }
func (d *Dropdown) Close()  { d.open = false }

func (d *Dropdown) IsOpen() bool {
	return d.open
}

// OutsideClick closes the menu without touching the selection.
func (d *Dropdown) OutsideClick() {
	d.open = false
}

// Select marks id, updates the trigger label and closes the menu. It reports
// false, changing nothing, when id is not in the menu.
func (d *Dropdown) Select(id string) bool {
	if !d.Mark(id) {
		return false
	}
	d.open = false
	return true
}

// Mark selects id and sets the trigger label without changing open state.
func (d *Dropdown) Mark(id string) bool {
	idx := d.indexOf(id)
	if idx < 0 {
		return false
	}
	for i := range d.items {
		d.items[i].Selected = i == idx
	}
	d.label = d.items[idx].Label
	return true
}

// Selected returns the selected id, or "" when nothing is selected.
func (d *Dropdown) Selected() string {
	for _, item := range d.items {
		if item.Selected {
			return item.ID
		}
	}
	return ""
}

// Label is the trigger text.
func (d *Dropdown) Label() string {
	return d.label
}

func (d *Dropdown) Items() []Item {
	return append([]Item(nil), d.items...)
}

func (d *Dropdown) indexOf(id string) int {
	for i, item := range d.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

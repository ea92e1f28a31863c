package model

// Item is a single catalog entry.
type Item struct {
	ID          int64   `json:"id"`
	Owner       string  `json:"owner"`
	Editor      string  `json:"editor"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
}

// NewItem holds the fields needed to create an item. A nil field was not
// supplied by the caller.
type NewItem struct {
	Title       *string
	Owner       *string
	Description *string
	Price       *float64
	Quantity    *float64
}

// Validate reports every required field that is missing.
func (n NewItem) Validate() error {
	var missing []string
	if n.Title == nil {
		missing = append(missing, "title")
	}
	if n.Owner == nil {
		missing = append(missing, "owner")
	}
	if n.Description == nil {
		missing = append(missing, "description")
	}
	if n.Price == nil {
		missing = append(missing, "price")
	}
	if n.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return MissingFields(missing...)
	}
	return nil
}

// ItemPatch lists the updatable item fields. Nil fields are left unchanged.
type ItemPatch struct {
	Title       *string
	Description *string
	Editor      *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Editor == nil
}

// Columns returns the column names and values of the present fields, in a
// fixed order.
func (p ItemPatch) Columns() ([]string, []any) {
	var cols []string
	var vals []any
	if p.Title != nil {
		cols = append(cols, "title")
		vals = append(vals, *p.Title)
	}
	if p.Description != nil {
		cols = append(cols, "description")
		vals = append(vals, *p.Description)
	}
	if p.Editor != nil {
		cols = append(cols, "editor")
		vals = append(vals, *p.Editor)
	}
	return cols, vals
}

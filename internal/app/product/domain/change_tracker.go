package domain

import "sort"

// ChangeTracker records the columns touched since an entity was loaded. Repositories build
// UPDATE mutations from it, so a product, image, spec or variant write covers the changed
// columns only.
type ChangeTracker struct {
	fields map[string]struct{}
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{fields: map[string]struct{}{}}
}

func (ct *ChangeTracker) MarkDirty(fields ...string) {
	for _, f := range fields {
		ct.fields[f] = struct{}{}
	}
}

func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.fields[field]
	return ok
}

func (ct *ChangeTracker) HasChanges() bool { return len(ct.fields) > 0 }

// DirtyFields lists the touched columns sorted by name.
func (ct *ChangeTracker) DirtyFields() []string {
	out := make([]string, 0, len(ct.fields))
	for f := range ct.fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

package apicontract

type Category struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug" validate:"required"`
	SortOrder int     `json:"sort_order"`
	ParentID  *string `json:"parent_id"`
}

type CategoryInput struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Slug      string  `json:"slug" validate:"required,max=255"`
	SortOrder int     `json:"sort_order"`
	ParentID  *string `json:"parent_id" validate:"omitempty,uuid"`
}

type CategoryPatch struct {
	Name      *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Slug      *string          `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
	SortOrder *int             `json:"sort_order,omitempty"`
	ParentID  Nullable[string] `json:"parent_id,omitzero"`
}

type CreatedCategory struct {
	ID   string `json:"id" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

package schema

// RefProfileTable represents the 'profile' table
type RefProfileTable struct {
	Table       string
	ID          string
	ImageURL    string
	Description string
	UpdatedAt   string
}

// RefProfile is the schema definition for profile
var RefProfile = RefProfileTable{
	Table:       "profile",
	ID:          "id",
	ImageURL:    "image_url",
	Description: "description",
	UpdatedAt:   "updated_at",
}

func (t RefProfileTable) Columns() []string {
	return []string{t.ID, t.ImageURL, t.Description, t.UpdatedAt}
}

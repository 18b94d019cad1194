package schema

// FieldDefinition describes one custom field configured on the server.
// Name is the undecorated field name, without the custom_ wire prefix.
type FieldDefinition struct {
	Name           string `json:"name" validate:"required"`
	DeclaredTypeID int    `json:"type_id"`
}

// Schema is the list of field definitions a caller supplies with a request.
type Schema []FieldDefinition

// Index builds a name to declared type id lookup.
func (s Schema) Index() map[string]int {
	idx := make(map[string]int, len(s))
	for _, d := range s {
		idx[d.Name] = d.DeclaredTypeID
	}
	return idx
}

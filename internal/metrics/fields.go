package metrics

// ExtractField converts one raw field value into a (name, value) pair.
// Text and single-select fields yield a string, number fields a float64,
// user fields an ordered []string of handles. It returns ok=false for
// fields without a resolvable name and for unknown kinds, which callers
// must skip rather than treat as an error.
func ExtractField(fv FieldValue) (string, any, bool) {
	if fv.FieldName == "" {
		return "", nil, false
	}

	switch fv.Kind {
	case FieldTypeText:
		return fv.FieldName, fv.Text, true
	case FieldTypeSingleSelect:
		return fv.FieldName, fv.Option, true
	case FieldTypeNumber:
		return fv.FieldName, fv.Number, true
	case FieldTypeUsers:
		handles := make([]string, 0, len(fv.Users))
		for _, u := range fv.Users {
			handles = append(handles, u.Handle())
		}
		return fv.FieldName, handles, true
	default:
		// Unknown field kinds are ignored, not failed on
		return "", nil, false
	}
}

package fixture

// FirstQueryParam returns the first value of the query parameter key.
// The boolean reports whether the parameter was present at all; a present
// parameter may still carry an empty value.
func FirstQueryParam(req *Request, key string) ([]byte, bool) {
	if req == nil || req.Query == nil {
		return nil, false
	}

	values, ok := req.Query[key]
	if !ok || len(values) == 0 {
		return nil, false
	}

	return []byte(values[0]), true
}

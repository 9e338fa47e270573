package memhashmap

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that an entry with an equal key already exists
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key already exists
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// InvalidTable - Custom error to inform that the table is nil or has been freed
type InvalidTable struct {
	msg string
}

// Error - Used to notify that the table can not be used
func (E InvalidTable) Error() string {
	if E.msg == "" {
		return "invalid or freed table"
	}
	return E.msg
}

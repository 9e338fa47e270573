package memcache

// NotFound - Custom error to inform that the item does not exist (or has expired)
type NotFound struct {
	msg string
}

// Error - Used to notify that no item was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "not found"
	}
	return E.msg
}

// NotStored - Custom error to inform that the item was not stored because a condition of the command failed,
// such as add on an existing key or replace on a missing one
type NotStored struct {
	msg string
}

// Error - Used to notify that the item was not stored
func (E NotStored) Error() string {
	if E.msg == "" {
		return "not stored"
	}
	return E.msg
}

// Exists - Custom error to inform that the item was modified since the cas value given was fetched
type Exists struct {
	msg string
}

// Error - Used to notify a cas mismatch
func (E Exists) Error() string {
	if E.msg == "" {
		return "exists"
	}
	return E.msg
}

// NotNumeric - Custom error to inform that incr or decr was used on a value that is not a decimal number
type NotNumeric struct {
	msg string
}

// Error - Used to notify that a value can not be incremented or decremented
func (E NotNumeric) Error() string {
	if E.msg == "" {
		return "cannot increment or decrement non-numeric value"
	}
	return E.msg
}

// InvalidKey - Custom error to inform that a key is empty, too long or holds control characters or spaces
type InvalidKey struct {
	msg string
}

// Error - Used to notify an invalid key
func (E InvalidKey) Error() string {
	if E.msg == "" {
		return "invalid key"
	}
	return E.msg
}

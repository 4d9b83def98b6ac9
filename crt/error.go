package crt

// TableFull - Custom error to inform that no bucket with free room was found along the exploration sequence
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that the key is already stored in the table
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

// UnknownFunction - Custom error to inform that a selector code does not identify any dispersion or exploration function
type UnknownFunction struct {
	msg string
}

// Error - Used to notify that the selector code is not recognized
func (U UnknownFunction) Error() string {
	if U.msg == "" {
		return "unknown function code"
	}
	return U.msg
}

// UnknownTechnique - Custom error to inform that the collision resolution technique is not recognized
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify that the technique is not recognized
func (U UnknownTechnique) Error() string {
	if U.msg == "" {
		return "unknown collision resolution technique"
	}
	return U.msg
}

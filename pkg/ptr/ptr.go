package ptr

// Int converts an int value to a ptr to an int value
func Int(v int) *int {
	return &v
}

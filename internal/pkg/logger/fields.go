package logger

import "go.uber.org/zap"

// String creates a field with a string value
func String(key, value string) zap.Field {
	return zap.String(key, value)
}

// Int creates a field with an int value
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Bool creates a field with a bool value
func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}

// Strings creates a field with a string slice value
func Strings(key string, value []string) zap.Field {
	return zap.Strings(key, value)
}

package errors

import "fmt"

// ParseFailed creates a JSON parse failure error
func ParseFailed(err error) *ExplorerError {
	return Wrap(err, ErrCodeParseFailed, "failed to parse JSON input")
}

// InputEmpty creates an empty input error
func InputEmpty() *ExplorerError {
	return New(ErrCodeInputEmpty, "input is empty")
}

// QueryInvalid creates an invalid JMESPath query error
func QueryInvalid(expr string, err error) *ExplorerError {
	return Wrap(err, ErrCodeQueryInvalid, fmt.Sprintf("invalid query expression: %s", expr)).
		WithDetail("expression", expr)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(path string, err error) *ExplorerError {
	return Wrap(err, ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration file: %s", path)).
		WithDetail("path", path)
}

// ClipboardUnavailable creates a clipboard access error
func ClipboardUnavailable(err error) *ExplorerError {
	return Wrap(err, ErrCodeClipboardUnavailable, "system clipboard is unavailable")
}

package matching

import "fmt"

// UnknownCareerError indicates a requested career title is absent from the catalog.
type UnknownCareerError struct {
	Title string
}

func (e *UnknownCareerError) Error() string {
	return fmt.Sprintf("unknown career: %s", e.Title)
}

// InvalidInputError indicates an empty or malformed skill list reached the engine.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "count": { "type": "integer", "minimum": 0 }
  }
}`

func TestValidateString_Valid(t *testing.T) {
	err := ValidateString(testSchema, `{"name": "catalog", "count": 3}`)
	assert.NoError(t, err)
}

func TestValidateString_MissingRequiredField(t *testing.T) {
	err := ValidateString(testSchema, `{"count": 3}`)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Errors, 1)
	assert.Contains(t, valErr.Errors[0].Message, "name")
}

func TestValidateString_MultipleErrors(t *testing.T) {
	err := ValidateString(testSchema, `{"name": "", "count": -1}`)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Errors, 2)

	msg := valErr.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1.")
	assert.Contains(t, msg, "2.")
}

func TestValidateString_MalformedDocument(t *testing.T) {
	err := ValidateString(testSchema, `{"name":`)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateString_MalformedSchema(t *testing.T) {
	err := ValidateString(`{"type":`, `{"name": "x"}`)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"name": "catalog"}`), 0o644))

	assert.NoError(t, ValidateFile(schemaPath, docPath))
}

func TestValidateFile_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	err := ValidateFile(schemaPath, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateFile(filepath.Join(dir, "absent-schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}

// getBinaryPath returns the path to the career_agent binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "career_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

func TestExtractCommand_MutuallyExclusiveFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resume := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("python and sql"), 0644))

	cmd := exec.Command(binaryPath, "extract", "--file", resume, "--url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestExtractCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --file or --url")
}

func TestExtractCommand_TextFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resume := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("Experienced python developer with sql and docker"), 0644))

	cmd := exec.Command(binaryPath, "extract", "--file", resume)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "EXTRACTED SKILLS")
	assert.Contains(t, string(output), "python")
}

func TestPredictCommand_RequiresSkills(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "predict")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestPredictCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "predict", "--skills", "python,sql,machine learning")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "CAREER PREDICTIONS")
	assert.Contains(t, string(output), "SKILL GAP")
}

func TestRoadmapCommand_UnknownCareer(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "roadmap", "--career", "Astronaut", "--skills", "python")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown career")
}

func TestCareersCommand_ListsCatalog(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "careers")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "Data Scientist")
	assert.Contains(t, string(output), "15 careers")
}

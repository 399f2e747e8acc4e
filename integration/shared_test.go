//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedHppsPath holds the path to a shared hpps binary built once for all tests.
	sharedHppsPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getHppsBinary returns the path to the hpps binary, building it once if needed.
func getHppsBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "hpps-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		hppsPath := filepath.Join(tempDir, "hpps")
		buildCmd := exec.Command("go", "build", "-o", hppsPath, "./cmd/hpps")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build hpps: %v", err))
		}

		sharedHppsPath = hppsPath
	})

	return sharedHppsPath
}

// writeMetricsFixture writes a small batch metrics document and returns its path.
func writeMetricsFixture(t *testing.T) string {
	t.Helper()
	doc := `[
  {"candidate": "alice", "cf_rating": 2100, "cf_hard_problem_ratio": 0.6, "real_projects_count": 25, "active_months": 40, "new_tech_usage": 80},
  {"candidate": "bob", "lc_rating": 1600, "real_projects_count": 5, "active_months": 12},
  {"candidate": "carol", "cf_rating": 1200, "activity_frequency": 20}
]`
	path := filepath.Join(t.TempDir(), "metrics.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write metrics fixture: %v", err)
	}
	return path
}

func runHppsCommand(t *testing.T, args ...string) error {
	hppsPath := getHppsBinary()
	cmd := exec.Command(hppsPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}

package service

import (
	"os"
	"path/filepath"
	"testing"

	"echo-journal/database"
	"echo-journal/logger"

	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	logDir, err := os.MkdirTemp("", "echo-journal-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("EJ_LOG_FOLDER", logDir)
	logger.InitLogger(logging.DEBUG)

	code := m.Run()

	logger.CloseLogger()
	os.RemoveAll(logDir)
	os.Exit(code)
}

// setupTestDB opens a fresh database for one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	if err := database.InitDB(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("init test db: %v", err)
	}
	t.Cleanup(func() {
		if err := database.CloseDB(); err != nil {
			t.Errorf("close test db: %v", err)
		}
	})
}

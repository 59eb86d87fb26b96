package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// persist assigns the session an ID and writes report.json under a fresh
// session directory. Returns the report path.
func persist(outputsRoot string, s *Session) (string, error) {
	s.ID = "session_" + uuid.NewString()
	dir := filepath.Join(outputsRoot, s.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "report.json")
	if err := writeJSON(path, s); err != nil {
		return "", err
	}
	return path, nil
}

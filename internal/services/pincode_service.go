// internal/services/pincode_service.go
package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// PincodeService persists exactly one scalar, the user's delivery
// postal code, to a fixed-name local file. Storage failures are logged
// and otherwise ignored: the in-memory value keeps working for the
// life of the process.
type PincodeService struct {
	path string

	mu      sync.Mutex
	pincode string
}

type pincodeFile struct {
	Pincode string `json:"pincode"`
}

// NewPincodeService reads the saved pincode once at startup. A missing
// or unreadable file just means no saved pincode.
func NewPincodeService(path string) *PincodeService {
	s := &PincodeService{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Failed to read saved pincode, continuing without it")
		}
		return s
	}

	var f pincodeFile
	if err := json.Unmarshal(data, &f); err != nil {
		logrus.WithError(err).Warn("Saved pincode file is corrupt, continuing without it")
		return s
	}

	s.pincode = f.Pincode
	return s
}

func (s *PincodeService) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pincode
}

// Set updates the pincode and writes it through to disk on every
// change.
func (s *PincodeService) Set(pincode string) {
	s.mu.Lock()
	s.pincode = pincode
	s.mu.Unlock()

	data, err := json.Marshal(pincodeFile{Pincode: pincode})
	if err != nil {
		logrus.WithError(err).Warn("Failed to encode pincode")
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logrus.WithError(err).Warn("Failed to create pincode directory, value kept in memory only")
		return
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logrus.WithError(err).Warn("Failed to write pincode, value kept in memory only")
	}
}

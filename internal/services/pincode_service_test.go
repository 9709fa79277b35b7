// internal/services/pincode_service_test.go
package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPincodeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pincode.json")

	svc := NewPincodeService(path)
	assert.Empty(t, svc.Get())

	svc.Set("400050")
	assert.Equal(t, "400050", svc.Get())

	// A fresh service reads the value written by the last one.
	again := NewPincodeService(path)
	assert.Equal(t, "400050", again.Get())
}

func TestPincodeCorruptFileIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pincode.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	svc := NewPincodeService(path)
	assert.Empty(t, svc.Get())
}

func TestPincodeWriteFailureKeepsMemoryValue(t *testing.T) {
	// Point the file inside a path that cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte(""), 0o644))
	path := filepath.Join(blocker, "nested", "pincode.json")

	svc := NewPincodeService(path)
	svc.Set("560103")

	// Log-and-continue: the write failed but the value survives in
	// memory for the life of the process.
	assert.Equal(t, "560103", svc.Get())
}

package collections

import (
	"os"
	"testing"

	foundation "github.com/spalx/SXFoundation"
)

func TestMain(m *testing.M) {
	foundation.InitPoolManager()
	code := m.Run()
	foundation.PurgePoolManager()
	os.Exit(code)
}

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/namereg/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/namereg/internal/app"
	"github.com/custodia-labs/namereg/internal/config"
	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/logger"
)

// setupTestServices wires memory-backed services into the package globals
// and restores every global the commands touch when the test ends.
func setupTestServices(t *testing.T) *memory.NameStore {
	t.Helper()
	store := memory.NewNameStore()
	a := app.New(config.Default(), store, nil)
	greetingService = a.Greeter
	nameService = a.Names
	t.Cleanup(resetGlobals)
	return store
}

func resetGlobals() {
	teardownServices()
	greetingService = nil
	nameService = nil
	configStore = nil
	cfg = config.Default()
	openApp = app.Open
	configDir = ""
	storageFlag = ""
	verbose = false
	listJSON = false
	serveAddr = ""
	mcpHTTPAddr = ""
	logger.SetVerbose(false)
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// failingNameService always returns err.
type failingNameService struct {
	err error
}

func (f *failingNameService) Add(context.Context, string) (domain.StoredName, error) {
	return domain.StoredName{}, f.err
}

func (f *failingNameService) List(context.Context) ([]domain.StoredName, error) {
	return nil, f.err
}

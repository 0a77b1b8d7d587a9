package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/toilet-monitor/internal/app"
	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/testutil"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

// testEnv holds the container and the doubles behind it.
type testEnv struct {
	container     *app.Container
	storage       *testutil.MockStorage
	downloader    *testutil.MockDownloader
	printer       *testutil.MockPrinter
	sharer        *testutil.MockSharer
	configManager *testutil.MockConfigManager
}

// newTestEnv creates a container backed by mocks for testing.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		storage:       testutil.NewMockStorage(),
		downloader:    &testutil.MockDownloader{},
		printer:       &testutil.MockPrinter{},
		sharer:        &testutil.MockSharer{},
		configManager: &testutil.MockConfigManager{},
	}
	home := t.TempDir()
	env.container = app.NewWithDeps(
		app.Config{HomeDir: home, ConfigPath: domain.ConfigPath(home), LogPath: domain.LogPath(home)},
		domain.NewDefaultConfig(),
		usecase.ControllerDeps{
			Storage:    env.storage,
			Downloader: env.downloader,
			Printer:    env.printer,
			Sharer:     env.sharer,
			Clock:      &testutil.MockClock{NowTime: testNow},
		},
		&testutil.MockConfigLoader{},
		env.configManager,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return env
}

// run executes a root command with args and returns stdout and stderr.
func (e *testEnv) run(args ...string) (string, string, error) {
	return runCommand(NewRootCommand(e.container, "test"), args...)
}

func runCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// item starts a fresh controller and returns the stored item.
func (e *testEnv) item(t *testing.T, id int) domain.Item {
	t.Helper()
	ctrl := e.container.Controller()
	if _, err := ctrl.Start(t.Context()); err != nil {
		t.Fatalf("start: %v", err)
	}
	item, ok := ctrl.Checklist().Find(id)
	if !ok {
		t.Fatalf("item %d not found", id)
	}
	return item
}

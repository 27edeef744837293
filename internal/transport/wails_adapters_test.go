package transport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"templatedesk/internal/common"
	"templatedesk/internal/config"
	"templatedesk/internal/container"
	preferencesDomain "templatedesk/internal/domain/preferences"
	statisticsDomain "templatedesk/internal/domain/statistics"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialogs struct {
	path string
	err  error
}

func (f *fakeDialogs) PickTemplate() (string, error) {
	return f.path, f.err
}

type fakeNavigator struct {
	urls []string
	err  error
}

func (f *fakeNavigator) LoadURL(uri string) error {
	if f.err != nil {
		return f.err
	}
	f.urls = append(f.urls, uri)
	return nil
}

type fakeEmitter struct {
	events []string
}

func (f *fakeEmitter) Emit(event string, data ...interface{}) {
	f.events = append(f.events, event)
}

type testShell struct {
	app       *WailsApp
	config    *config.Config
	dialogs   *fakeDialogs
	navigator *fakeNavigator
	emitter   *fakeEmitter
}

func setupTestShell(t *testing.T) *testShell {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewWithFs(afero.NewMemMapFs(), "/app", logger)

	shell := &testShell{
		config:    cfg,
		dialogs:   &fakeDialogs{},
		navigator: &fakeNavigator{},
		emitter:   &fakeEmitter{},
	}
	c := container.New(cfg, nil, shell.emitter)
	shell.app = NewWailsApp(context.Background(), c, Host{
		Dialogs:   shell.dialogs,
		Navigator: shell.navigator,
		Emitter:   shell.emitter,
	})
	return shell
}

func (s *testShell) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(s.config.Fs, path, []byte(content), 0644))
}

func TestWailsApp_UploadListDelete(t *testing.T) {
	shell := setupTestShell(t)
	shell.writeFile(t, "/downloads/report.html", "<h1>report</h1>")
	shell.dialogs.path = "/downloads/report.html"

	result := shell.app.UploadFile()
	require.Equal(t, StatusOK, result.Status, result.Message)
	assert.Equal(t, "report.html", result.Data)
	assert.Contains(t, shell.emitter.events, common.EventTemplatesChanged)
	assert.Contains(t, shell.emitter.events, common.EventStatsUpdate)

	result = shell.app.UploadFile()
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "report_1.html", result.Data)

	list := shell.app.ListFiles()
	require.Equal(t, StatusOK, list.Status)
	assert.Equal(t, []string{"report.html", "report_1.html"}, list.Data)

	deleted := shell.app.DeleteFile("report.html")
	require.Equal(t, StatusOK, deleted.Status)

	list = shell.app.ListFiles()
	assert.Equal(t, []string{"report_1.html"}, list.Data)

	// The file itself stays on disk
	exists, err := afero.Exists(shell.config.Fs, filepath.Join(shell.config.TemplatesDir, "report.html"))
	require.NoError(t, err)
	assert.True(t, exists)

	stats := shell.app.GetStats()
	assert.Equal(t, 2, stats.SessionImports)
	assert.Equal(t, int64(2*len("<h1>report</h1>")), stats.SessionBytes)
	assert.Equal(t, 1, stats.RegisteredTemplates)
}

func TestWailsApp_UploadCancelled(t *testing.T) {
	shell := setupTestShell(t)
	shell.dialogs.path = ""

	result := shell.app.UploadFile()
	assert.Equal(t, StatusCancelled, result.Status)
	assert.Empty(t, shell.emitter.events)

	list := shell.app.ListFiles()
	assert.Equal(t, []string{}, list.Data)
}

func TestWailsApp_UploadDialogError(t *testing.T) {
	shell := setupTestShell(t)
	shell.dialogs.err = errors.New("no display")

	result := shell.app.UploadFile()
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "no display", result.Message)
}

func TestWailsApp_DeleteUnknownAndProtected(t *testing.T) {
	shell := setupTestShell(t)

	for _, name := range []string{"missing.html", common.DefaultDocument, "../etc/passwd"} {
		result := shell.app.DeleteFile(name)
		assert.Equal(t, StatusNotFound, result.Status, name)
	}
	assert.Empty(t, shell.emitter.events)
}

func TestWailsApp_OpenFile(t *testing.T) {
	shell := setupTestShell(t)
	shell.writeFile(t, filepath.Join(shell.config.TemplatesDir, "page.html"), "page")
	shell.writeFile(t, "/downloads/page.html", "page")
	shell.dialogs.path = "/downloads/page.html"
	// page.html is on disk, so the upload lands as page_1.html
	require.Equal(t, StatusOK, shell.app.UploadFile().Status)

	result := shell.app.OpenFile("page_1.html")
	require.Equal(t, StatusOK, result.Status)
	require.Len(t, shell.navigator.urls, 1)
	assert.Equal(t, common.FileURI(filepath.Join(shell.config.TemplatesDir, "page_1.html")), shell.navigator.urls[0])
	assert.Equal(t, shell.navigator.urls[0], result.Data)

	// On disk but never registered
	assert.Equal(t, StatusNotFound, shell.app.OpenFile("page.html").Status)
	assert.Equal(t, StatusNotFound, shell.app.OpenFile("absent.html").Status)
	assert.Equal(t, StatusNotFound, shell.app.OpenFile("../config/config.toml").Status)
	assert.Len(t, shell.navigator.urls, 1)

	require.Equal(t, StatusOK, shell.app.OpenFile(common.DefaultDocument).Status)
	assert.Len(t, shell.navigator.urls, 2)
}

func TestWailsApp_OpenFileRegisteredButMissing(t *testing.T) {
	shell := setupTestShell(t)
	shell.writeFile(t, "/downloads/gone.html", "gone")
	shell.dialogs.path = "/downloads/gone.html"
	require.Equal(t, StatusOK, shell.app.UploadFile().Status)
	require.NoError(t, shell.config.Fs.Remove(filepath.Join(shell.config.TemplatesDir, "gone.html")))

	assert.Equal(t, StatusNotFound, shell.app.OpenFile("gone.html").Status)
	assert.Empty(t, shell.navigator.urls)
}

func TestWailsApp_OpenFileNavigationError(t *testing.T) {
	shell := setupTestShell(t)
	shell.navigator.err = errors.New("window closed")

	result := shell.app.OpenFile(common.DefaultDocument)
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "window closed", result.Message)
}

func TestWailsApp_Refresh(t *testing.T) {
	shell := setupTestShell(t)

	result := shell.app.Refresh()
	require.Equal(t, StatusOK, result.Status)
	require.Len(t, shell.navigator.urls, 1)
	assert.Equal(t, common.FileURI(shell.config.DefaultDocumentPath()), shell.navigator.urls[0])
}

func TestWailsApp_Preferences(t *testing.T) {
	shell := setupTestShell(t)

	result := shell.app.GetPrefs()
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, preferencesDomain.Preferences{Theme: "light", Zoom: "1.0"}, result.Data)

	require.Equal(t, StatusOK, shell.app.SetPrefs("dark", "1.5").Status)
	assert.Equal(t, preferencesDomain.Preferences{Theme: "dark", Zoom: "1.5"}, shell.app.GetPrefs().Data)

	require.Equal(t, StatusOK, shell.app.SaveTheme("light").Status)
	assert.Equal(t, preferencesDomain.Preferences{Theme: "light", Zoom: "1.5"}, shell.app.GetPrefs().Data)
}

func TestWailsApp_RecentImportsWithoutDatabase(t *testing.T) {
	shell := setupTestShell(t)

	result := shell.app.GetRecentImports()
	assert.Equal(t, StatusOK, result.Status)
	assert.Empty(t, result.Data)
}

func TestWailsApp_AppStatus(t *testing.T) {
	shell := setupTestShell(t)

	status := shell.app.GetAppStatus()
	assert.Equal(t, common.AppName, status["app_name"])
	assert.Equal(t, shell.config.TemplatesDir, status["templates_dir"])
	assert.Equal(t, false, status["history_available"])
}

func TestErrorResult(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status Status
	}{
		{name: "cancelled", err: common.ErrCancelled, status: StatusCancelled},
		{name: "not found", err: common.ErrNotFound, status: StatusNotFound},
		{name: "invalid name", err: common.ErrInvalidName, status: StatusNotFound},
		{name: "storage", err: common.NewStorageError("copy", "/x", errors.New("boom")), status: StatusError},
		{name: "corrupt", err: common.ErrCorrupt, status: StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errorResult(tt.err)
			assert.Equal(t, tt.status, result.Status)
			assert.Nil(t, result.Data)
		})
	}
}

var _ statisticsDomain.Notifier = (*fakeEmitter)(nil)

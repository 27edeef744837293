package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"templatedesk/internal/common"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// ErrOutsideAssets is returned for documents the asset server cannot reach
var ErrOutsideAssets = errors.New("document is outside the managed directory")

// NewHost returns the collaborators backed by the running Wails window.
// templatesDir and startPage must match what NewAssetHandler serves.
func NewHost(ctx context.Context, templatesDir, startPage string) Host {
	return Host{
		Dialogs:   NewDialogsHandler(ctx),
		Navigator: NewWindowNavigator(ctx, templatesDir, startPage),
		Emitter:   NewEventEmitter(ctx),
	}
}

// windowNavigator moves the webview between documents of the asset server.
// The webview cannot follow file:// links from the asset origin, so file
// URIs are translated to the paths NewAssetHandler serves.
type windowNavigator struct {
	ctx          context.Context
	templatesDir string
	startPage    string
}

func NewWindowNavigator(ctx context.Context, templatesDir, startPage string) Navigator {
	return &windowNavigator{
		ctx:          ctx,
		templatesDir: templatesDir,
		startPage:    startPage,
	}
}

func (n *windowNavigator) LoadURL(uri string) error {
	target, err := AssetPath(uri, n.templatesDir, n.startPage)
	if err != nil {
		return err
	}

	quoted, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("encode url %s: %w", target, err)
	}

	wailsruntime.WindowExecJS(n.ctx, fmt.Sprintf("window.location.replace(%s);", quoted))
	return nil
}

// AssetPath maps a file URI to the asset server path serving the same
// document: "/" for the start page, "/<name>" for files in templatesDir.
func AssetPath(uri, templatesDir, startPage string) (string, error) {
	if uri == common.FileURI(startPage) {
		return "/", nil
	}

	prefix := common.FileURI(templatesDir) + "/"
	rel, ok := strings.CutPrefix(uri, prefix)
	if !ok || rel == "" {
		return "", fmt.Errorf("%w: %s", ErrOutsideAssets, uri)
	}
	for _, segment := range strings.Split(rel, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", fmt.Errorf("%w: %s", ErrOutsideAssets, uri)
		}
	}

	return (&url.URL{Path: "/" + rel}).EscapedPath(), nil
}

type eventEmitter struct {
	ctx context.Context
}

func NewEventEmitter(ctx context.Context) Emitter {
	return &eventEmitter{ctx: ctx}
}

func (e *eventEmitter) Emit(event string, data ...interface{}) {
	wailsruntime.EventsEmit(e.ctx, event, data...)
}

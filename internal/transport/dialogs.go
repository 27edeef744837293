package transport

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

type dialogsHandler struct {
	ctx context.Context
}

func NewDialogsHandler(ctx context.Context) DialogHandler {
	return &dialogsHandler{
		ctx: ctx,
	}
}

func (h *dialogsHandler) PickTemplate() (string, error) {
	selection, err := wailsruntime.OpenFileDialog(h.ctx, wailsruntime.OpenDialogOptions{
		Title: "Select HTML template",
		Filters: []wailsruntime.FileFilter{
			{
				DisplayName: "HTML Files (*.html)",
				Pattern:     "*.html",
			},
		},
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{"out.png"}},
		{goos: "freebsd", wantName: "xdg-open", wantArgs: []string{"out.png"}},
		{goos: "darwin", wantName: "open", wantArgs: []string{"out.png"}},
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", "out.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := viewerCommand(tt.goos, "out.png")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSystemViewer_Open(t *testing.T) {
	var gotName string
	var gotArgs []string

	v := &SystemViewer{
		goos: "darwin",
		run: func(_ context.Context, name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		},
	}

	require.NoError(t, v.Open(context.Background(), "plots/out.svg"))
	assert.Equal(t, "open", gotName)
	assert.Equal(t, []string{"plots/out.svg"}, gotArgs)
}

func TestSystemViewer_OpenError(t *testing.T) {
	v := &SystemViewer{
		goos: "linux",
		run: func(context.Context, string, ...string) error {
			return errors.New("executable file not found")
		},
	}

	err := v.Open(context.Background(), "out.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xdg-open")
}

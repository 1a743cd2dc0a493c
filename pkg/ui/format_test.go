package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/payload/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"auto", FormatAuto, false},
		{"", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "json", FormatJSON.String())
}

func TestPrinterPlainText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(FormatText, &buf)

	p.Success("copied %d files", 3)
	p.Info("processing %s", "gtk3")
	p.Plain("%s", "/mingw64/bin/x.dll")

	out := buf.String()
	assert.Contains(t, out, "copied 3 files")
	assert.Contains(t, out, "processing gtk3")
	assert.Contains(t, out, "/mingw64/bin/x.dll")
	// text format carries no ANSI escapes
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinterJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(FormatJSON, &buf)

	require.NoError(t, p.JSON(map[string]int{"copied": 2}))
	assert.JSONEq(t, `{"copied": 2}`, buf.String())
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrSubprocess, "pactree -l gtk3 failed")
	rendered := RenderError(err)
	assert.Contains(t, rendered, "SUBPROCESS")
	assert.Contains(t, rendered, "pactree -l gtk3 failed")
}

func TestRenderPackageList(t *testing.T) {
	out := RenderPackageList("Closure", []string{"gtk3", "glib2"}, FormatText)
	assert.Equal(t, "gtk3\nglib2", out)

	styled := RenderPackageList("Closure", []string{"gtk3"}, FormatTerminal)
	assert.True(t, strings.Contains(styled, "gtk3"))
	assert.True(t, strings.Contains(styled, "Closure"))
}

func TestRenderFileList(t *testing.T) {
	out := RenderFileList([]string{"/a", "/b"}, FormatText)
	assert.Equal(t, "/a\n/b", out)
}

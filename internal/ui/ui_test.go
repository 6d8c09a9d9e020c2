package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.Info("Input file", "image.exe")
	r.Error("Error", "boom")
	r.Success("Done", "ok")
	r.Warning("Warning", "careful")

	want := "  * Input file      image.exe\n" +
		"  ✘ Error           boom\n" +
		"  ✔ Done            ok\n" +
		"  ! Warning         careful\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}

func TestReporter_Color(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)

	r.Error("Error", "boom")
	r.Warning("Warning", "empty")

	assert.Contains(t, buf.String(), ColorRed+"✘"+ColorReset)
	assert.Contains(t, buf.String(), ColorRed+"boom"+ColorReset)
	assert.Contains(t, buf.String(), ColorYellow+"empty"+ColorReset)
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(nil))
}

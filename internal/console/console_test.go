package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConsole_Streams(t *testing.T) {
	color.NoColor = true

	var out, errBuf bytes.Buffer
	c := NewWithWriters(&out, &errBuf)

	c.Printf("plain %d\n", 1)
	c.Successf("ok\n")
	c.Accentf("Nat.add\n")
	c.Errorf("boom\n")

	assert.Equal(t, "plain 1\nok\nNat.add\n", out.String())
	assert.Equal(t, "boom\n", errBuf.String())
}

package configloader

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportEnv(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	type scenario struct {
		name    string
		err     error
		level   logrus.Level
		message string
	}

	scenarios := []scenario{
		{"loaded", nil, logrus.InfoLevel, "CONFIGLOADER: DESTool.env loaded."},
		{"missing", os.ErrNotExist, logrus.WarnLevel, "CONFIGLOADER: Note: DESTool.env not loaded: file does not exist. Relying on the process environment."},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			hook.Reset()
			reportEnv("DESTool.env", s.err)

			require.Len(t, hook.AllEntries(), 1)
			assert.Equal(t, s.level, hook.LastEntry().Level)
			assert.Equal(t, s.message, hook.LastEntry().Message)
		})
	}
}

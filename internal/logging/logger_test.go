package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	var testCases = []struct {
		description string
		config      Config
		expectLevel zapcore.Level
		expectErr   bool
	}{
		{description: "defaults", config: DefaultConfig(), expectLevel: zapcore.InfoLevel},
		{description: "empty level", config: Config{}, expectLevel: zapcore.InfoLevel},
		{description: "development debug", config: Config{Level: "debug", Development: true}, expectLevel: zapcore.DebugLevel},
		{description: "file output", config: Config{Level: "warn", OutputPaths: []string{filepath.Join(t.TempDir(), "app.log")}}, expectLevel: zapcore.WarnLevel},
		{description: "invalid level", config: Config{Level: "loud"}, expectErr: true},
	}
	for _, testCase := range testCases {
		logger, err := New(testCase.config)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.True(t, logger.Core().Enabled(testCase.expectLevel), testCase.description)
		assert.False(t, logger.Core().Enabled(testCase.expectLevel-1), testCase.description)
	}
}

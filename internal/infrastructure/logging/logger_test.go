package logging

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		enabled zapcore.Level
		wantErr bool
	}{
		{"production info", DefaultConfig(), zapcore.InfoLevel, false},
		{"development debug", DevelopmentConfig(), zapcore.DebugLevel, false},
		{"warn without outputs", Config{Level: "warn"}, zapcore.WarnLevel, false},
		{"bad level", Config{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestNop(t *testing.T) {
	nop := NewNop()
	assert.False(t, nop.Core().Enabled(zapcore.FatalLevel))
	assert.NotNil(t, nop.Component("sessions"))
}

func TestLevelIsAdjustable(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"level":"debug"}`))
	w := httptest.NewRecorder()
	logger.Level().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Component("stream").Core().Enabled(zapcore.DebugLevel))
}

func TestEncoders(t *testing.T) {
	assert.Equal(t, "message", productionEncoder().MessageKey)
	assert.Equal(t, "timestamp", productionEncoder().TimeKey)
	assert.NotEqual(t, "message", developmentEncoder().MessageKey)
}

func TestFields(t *testing.T) {
	assert.Equal(t, KeySessionID, SessionID("sess_1").Key)
	assert.Equal(t, "sess_1", SessionID("sess_1").String)
	assert.Equal(t, KeyEngine, Engine("ddg").Key)
	assert.Equal(t, KeySource, Source("share").Key)
	assert.Equal(t, KeyRequestID, RequestID("r").Key)
}

package middleware

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	tele "gopkg.in/telebot.v3"
)

type fakeContext struct {
	tele.Context

	sender   *tele.User
	callback *tele.Callback
	message  *tele.Message
}

func (c *fakeContext) Sender() *tele.User { return c.sender }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Message() *tele.Message { return c.message }

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		ctx           *fakeContext
		handlerErr    error
		expectedLevel zapcore.Level
		expectedKind  string
	}{
		{
			name:          "callback handled",
			ctx:           &fakeContext{sender: &tele.User{ID: 1}, callback: &tele.Callback{}},
			expectedLevel: zapcore.DebugLevel,
			expectedKind:  "callback",
		},
		{
			name:          "document failed",
			ctx:           &fakeContext{sender: &tele.User{ID: 2}, message: &tele.Message{Document: &tele.Document{}}},
			handlerErr:    fmt.Errorf("boom"),
			expectedLevel: zapcore.ErrorLevel,
			expectedKind:  "document",
		},
		{
			name:          "message without sender",
			ctx:           &fakeContext{message: &tele.Message{}},
			expectedLevel: zapcore.DebugLevel,
			expectedKind:  "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Logger(zap.New(core))(func(tele.Context) error { return tt.handlerErr })

			err := handler(tt.ctx)

			assert.Equal(t, tt.handlerErr, err)
			entries := logs.All()
			assert.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
			assert.Equal(t, tt.expectedKind, entries[0].ContextMap()["update"])
		})
	}
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := Recover(zap.New(core))(func(tele.Context) error { panic("nil map") })

	err := handler(&fakeContext{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nil map")
	assert.Equal(t, 1, logs.Len())
}

func TestRecover_PassesThrough(t *testing.T) {
	handler := Recover(zap.NewNop())(func(tele.Context) error { return nil })

	assert.NoError(t, handler(&fakeContext{}))
}

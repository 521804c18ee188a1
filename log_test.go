package pathkit

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
)

var _ log.Logger = (*testingLogger)(nil)

// testingLogger writes log lines to t until the test is done.
type testingLogger struct {
	t    testing.TB
	mtx  sync.Mutex
	done atomic.Bool
}

func newTestingLogger(t testing.TB) *testingLogger {
	l := &testingLogger{t: t}
	t.Cleanup(func() {
		l.done.Store(true)
	})
	return l
}

func (l *testingLogger) Log(keyvals ...interface{}) error {
	if l.done.Load() {
		return nil
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.t.Log(keyvals...)
	return nil
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var count int
	SetLogger(log.LoggerFunc(func(keyvals ...interface{}) error {
		count++
		return nil
	}))

	assert.Equal(t, "1-", Interpolate("(a)-(b)", Properties{"a": 1}))
	assert.Equal(t, 1, count)

	SetLogger(nil)
	assert.NotNil(t, Logger())
	Interpolate("(b)", nil)
	assert.Equal(t, 1, count)
}

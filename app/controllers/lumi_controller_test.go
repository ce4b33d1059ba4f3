package controllers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

// overlapConn records whether two writes ever ran at the same time.
type overlapConn struct {
	writing int32
	writes  int32
	overlap int32
}

func (c *overlapConn) WriteMessage(messageType int, data []byte) error {
	if !atomic.CompareAndSwapInt32(&c.writing, 0, 1) {
		atomic.StoreInt32(&c.overlap, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.writes, 1)
	atomic.StoreInt32(&c.writing, 0)
	return nil
}

func TestPushToUserSerializesWritesPerClient(t *testing.T) {
	userID := uuid.New()
	conn := &overlapConn{}
	cl := &lumiClient{conn: conn, uid: userID}

	lumiClientsMu.Lock()
	lumiClientsByUser[userID] = map[*lumiClient]bool{cl: true}
	lumiClientsMu.Unlock()
	defer func() {
		lumiClientsMu.Lock()
		delete(lumiClientsByUser, userID)
		lumiClientsMu.Unlock()
	}()

	const pushes = 10
	var wg sync.WaitGroup
	for i := 0; i < pushes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pushToUser(userID, map[string]string{"response": "hi"})
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&conn.overlap) != 0 {
		t.Error("two writes ran concurrently on one connection")
	}
	if got := atomic.LoadInt32(&conn.writes); got != pushes {
		t.Errorf("writes delivered = %d, want %d", got, pushes)
	}
}

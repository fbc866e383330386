package ws

import (
	"context"

	"github.com/gorilla/websocket"
)

// Reader pulls frames from the websocket connection and forwards them to the
// message channel. The first read error is reported on the error channel and
// ends the loop; there is no retry.
type Reader struct {
	conn    *websocket.Conn
	msgChan chan<- []byte
	errChan chan<- error
}

func NewReader(conn *websocket.Conn, msgChan chan []byte, errChan chan error) *Reader {
	return &Reader{
		conn:    conn,
		msgChan: msgChan,
		errChan: errChan,
	}
}

// Run reads until the connection errors or the context is cancelled.
func (r *Reader) Run(ctx context.Context) {
	for {
		// ReadMessage blocks until a frame arrives or the connection fails.
		_, message, err := r.conn.ReadMessage()
		if err != nil {
			select {
			case r.errChan <- err:
			case <-ctx.Done():
			}
			return
		}

		select {
		case r.msgChan <- message:
		case <-ctx.Done():
			return
		}
	}
}

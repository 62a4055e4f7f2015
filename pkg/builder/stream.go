package builder

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	streamWriteWait   = 10 * time.Second
	streamPingPeriod  = 30 * time.Second
	streamSendBacklog = 32
)

// ErrStreamClosed is returned by Send after the stream shuts down.
var ErrStreamClosed = errors.New("builder: command stream closed")

// CommandStream pushes command batches to a browser over a websocket. It
// implements CommandSink, so a session can be wired straight to it.
type CommandStream struct {
	conn   *websocket.Conn
	logger *zap.Logger

	send chan []Command
	done chan struct{}
	once sync.Once
}

// StreamOption configures a CommandStream.
type StreamOption func(*CommandStream)

// WithStreamLogger routes stream diagnostics to the given logger.
func WithStreamLogger(logger *zap.Logger) StreamOption {
	return func(s *CommandStream) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewCommandStream wraps an upgraded websocket connection. Call Run to start
// pumping; the stream owns the connection from then on.
func NewCommandStream(conn *websocket.Conn, options ...StreamOption) *CommandStream {
	s := &CommandStream{
		conn:   conn,
		logger: zap.NewNop(),
		send:   make(chan []Command, streamSendBacklog),
		done:   make(chan struct{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Send enqueues one batch for delivery. It never blocks on the network; when
// the backlog is full the oldest queued batch is evicted so the peer always
// ends up with the newest state.
func (s *CommandStream) Send(commands ...Command) error {
	if len(commands) == 0 {
		return nil
	}
	batch := make([]Command, len(commands))
	copy(batch, commands)

	for {
		select {
		case <-s.done:
			return ErrStreamClosed
		case s.send <- batch:
			return nil
		default:
		}

		select {
		case stale := <-s.send:
			s.logger.Warn("send backlog full, evicting oldest batch",
				zap.Int("commands", len(stale)))
		default:
		}
	}
}

// Run pumps batches to the peer until the connection drops or Close is
// called. It blocks, so callers usually run it in the connection handler
// goroutine.
func (s *CommandStream) Run() error {
	go s.readLoop()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()
	defer s.Close()

	for {
		select {
		case batch := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := s.conn.WriteJSON(batch); err != nil {
				s.logger.Warn("command write failed", zap.Error(err))
				return err
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case <-s.done:
			return nil
		}
	}
}

// readLoop drains inbound frames so close frames and pongs are processed.
func (s *CommandStream) readLoop() {
	defer s.Close()
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("command stream read failed", zap.Error(err))
			}
			return
		}
	}
}

// Close shuts the stream down and closes the connection. Safe to call more
// than once.
func (s *CommandStream) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return err
}

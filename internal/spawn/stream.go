package spawn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

const (
	streamBuffer     = 256
	retryBackoff     = 250 * time.Millisecond
	maxReadFailures  = 10
	defaultDialLimit = 5 * time.Second
)

// ErrStreamClosed is reported when the producer closes its end.
var ErrStreamClosed = errors.New("spawn: producer closed the stream")

// StreamSource reads records from a producer connection on a background
// goroutine and hands them to the simulation through Poll, which never
// blocks.
type StreamSource struct {
	conn    io.ReadCloser
	records chan Record
	logger  *log.Logger

	state     atomic.Int32
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// DialStream connects to a producer at addr (host:port).
func DialStream(ctx context.Context, addr string, logger *log.Logger) (*StreamSource, error) {
	d := net.Dialer{Timeout: defaultDialLimit}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spawn: cannot connect to producer %s: %w", addr, err)
	}
	if logger != nil {
		logger.Info("connected to producer", "addr", conn.RemoteAddr().String())
	}
	return NewStreamSource(conn, logger), nil
}

// NewStreamSource starts reading from conn. The source owns conn and closes
// it on Close.
func NewStreamSource(conn io.ReadCloser, logger *log.Logger) *StreamSource {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &StreamSource{
		conn:    conn,
		records: make(chan Record, streamBuffer),
		logger:  logger,
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.readLoop()
	return s
}

// readLoop decodes fixed-size records until EOF, Close, or too many
// consecutive read failures. A partially filled frame survives a failed read
// so the stream stays aligned.
func (s *StreamSource) readLoop() {
	defer s.wg.Done()

	buf := make([]byte, RecordSize)
	filled := 0
	failures := 0
	for {
		n, err := s.conn.Read(buf[filled:])
		filled += n
		if filled == RecordSize {
			filled = 0
			failures = 0

			var r Record
			// Length is always RecordSize here.
			_ = r.UnmarshalBinary(buf)

			select {
			case s.records <- r:
			case <-s.done:
				return
			}
		}
		if err == nil {
			continue
		}

		if s.stopping() || errors.Is(err, net.ErrClosed) {
			s.state.Store(int32(StateClosed))
			return
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			s.logger.Warn("producer disconnected", "error", ErrStreamClosed, "partial", filled)
			s.state.Store(int32(StateClosed))
			return
		}

		failures++
		s.logger.Error("read from producer failed", "error", err, "attempt", failures)
		if failures >= maxReadFailures {
			s.logger.Error("giving up on producer stream", "failures", failures)
			s.state.Store(int32(StateClosed))
			return
		}
		select {
		case <-time.After(retryBackoff):
		case <-s.done:
			return
		}
	}
}

func (s *StreamSource) stopping() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Poll returns every record received since the last call without blocking.
func (s *StreamSource) Poll() []Record {
	var out []Record
	for {
		select {
		case r := <-s.records:
			out = append(out, r)
		default:
			return out
		}
	}
}

// State reports whether the producer is still connected.
func (s *StreamSource) State() State {
	return State(s.state.Load())
}

// Close stops the reader and closes the connection.
func (s *StreamSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.conn.Close()
		s.wg.Wait()
		s.state.Store(int32(StateClosed))
	})
	return err
}

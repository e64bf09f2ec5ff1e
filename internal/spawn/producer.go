package spawn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/charmbracelet/log"
)

// Producer serves generated records over TCP, one client at a time.
type Producer struct {
	addr   string
	gen    *Generator
	logger *log.Logger

	listener net.Listener
	ready    chan struct{}
}

// NewProducer creates a producer that will listen on addr.
func NewProducer(addr string, gen *Generator, logger *log.Logger) *Producer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Producer{
		addr:   addr,
		gen:    gen,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Addr returns the bound address once the listener is up, or the configured
// address before that.
func (p *Producer) Addr() string {
	if p.listener != nil {
		return p.listener.Addr().String()
	}
	return p.addr
}

// Ready is closed once the producer is accepting connections.
func (p *Producer) Ready() <-chan struct{} {
	return p.ready
}

// ListenAndServe accepts clients until ctx is cancelled. Each client receives
// records until it disconnects or a send fails; the producer then goes back
// to accepting.
func (p *Producer) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", p.addr)
	if err != nil {
		return fmt.Errorf("spawn: cannot listen on %s: %w", p.addr, err)
	}
	p.listener = ln
	close(p.ready)
	p.logger.Info("producer listening", "addr", ln.Addr().String())

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			p.logger.Error("accept failed", "error", err)
			continue
		}
		p.logger.Info("client connected", "remote", conn.RemoteAddr().String())
		p.serve(ctx, conn)
	}
}

// serve streams records to one client.
func (p *Producer) serve(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, RecordSize)
	for {
		for i := 0; i < p.gen.Burst(); i++ {
			r := p.gen.Next()
			r.put(buf)
			if _, err := conn.Write(buf); err != nil {
				p.logger.Warn("send failed, dropping client", "remote", conn.RemoteAddr().String(), "error", err)
				return
			}
			p.logger.Debug("sent vehicle", "record", r.String())
		}

		timer := time.NewTimer(p.gen.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

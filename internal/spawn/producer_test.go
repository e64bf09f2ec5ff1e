package spawn

import (
	"context"
	"testing"
	"time"
)

func TestProducerServesStream(t *testing.T) {
	gen, err := NewGenerator(GeneratorConfig{
		Pattern:     PatternStraight,
		Seed:        9,
		Burst:       3,
		MinInterval: 10 * time.Millisecond,
		MaxInterval: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewProducer("127.0.0.1:0", gen, nil)
	errc := make(chan error, 1)
	go func() { errc <- p.ListenAndServe(ctx) }()

	select {
	case <-p.Ready():
	case err := <-errc:
		t.Fatalf("ListenAndServe() error = %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("producer never became ready")
	}

	src, err := DialStream(ctx, p.Addr(), nil)
	if err != nil {
		t.Fatalf("DialStream() error = %v", err)
	}
	defer src.Close()

	var got []Record
	waitFor(t, func() bool {
		got = append(got, src.Poll()...)
		return len(got) >= 5
	})
	for i, r := range got {
		if r.VehicleID != int32(i+1) {
			t.Errorf("record %d id = %d, expected %d", i, r.VehicleID, i+1)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("record %d: %v", i, err)
		}
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("ListenAndServe() after cancel = %v, expected nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("ListenAndServe() did not return after cancel")
	}
}

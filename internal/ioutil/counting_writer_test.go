package ioutil_test

import (
	"bytes"
	"errors"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
)

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errtrace.Wrap(errors.New("write failed"))
}

func TestCountingWriter_Write(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	if _, err := cw.Write([]byte("scheme:")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cw.WriteString("//host"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cw.Fprint("?", "q"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if num, err := cw.Result(); err != nil || num != 15 {
		t.Errorf("cw.Result() = (%d, %v), want (15, nil)", num, err)
	}
	if got, want := buf.String(), "scheme://host?q"; got != want {
		t.Errorf("buf.String() = %q, want %q", got, want)
	}
}

func TestCountingWriter_StickyError(t *testing.T) {
	t.Parallel()

	cw := ioutil.NewCountingWriter(errorWriter{})

	if _, err := cw.Write([]byte("x")); err == nil {
		t.Fatal("expected error on first write")
	}
	if _, err := cw.WriteString("y"); err == nil {
		t.Fatal("expected sticky error on subsequent write")
	}
	if num, err := cw.Result(); err == nil || num != 0 {
		t.Errorf("cw.Result() = (%d, %v), want (0, error)", num, err)
	}
	if cw.Count() != 0 {
		t.Errorf("cw.Count() = %d, want 0", cw.Count())
	}
}

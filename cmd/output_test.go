package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestRenderDispatch(t *testing.T) {
	text := func(w io.Writer) error {
		_, err := io.WriteString(w, "plain report\n")
		return err
	}
	v := map[string]int{"errors": 2}

	var buf bytes.Buffer
	if err := render(&buf, "text", v, text); err != nil {
		t.Fatalf("text: %v", err)
	}
	if buf.String() != "plain report\n" {
		t.Errorf("text output = %q", buf.String())
	}

	buf.Reset()
	if err := render(&buf, "json", v, text); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"errors": 2`) {
		t.Errorf("json output = %q", buf.String())
	}

	buf.Reset()
	if err := render(&buf, "yaml", v, text); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "errors: 2") {
		t.Errorf("yaml output = %q", buf.String())
	}

	if err := render(&buf, "xml", v, text); err == nil {
		t.Error("expected error for unsupported format")
	}
}

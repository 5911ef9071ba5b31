package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func TestWritePageRendersFragmentInsideLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/release-log", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, Page{
		Title:    "Release Log",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", `id="fragment-root"`, "<title>Release Log | TextData</title>"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWritePageUsesExplicitStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/release-log", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, Page{
		Title:      "Release Log",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent("ok"),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
}

func TestWritePageToleratesNilFragmentAndWriter(t *testing.T) {
	t.Parallel()

	if err := WritePage(nil, nil, Page{Title: "x"}); err != nil {
		t.Fatalf("WritePage(nil writer) error = %v", err)
	}

	rr := httptest.NewRecorder()
	if err := WritePage(rr, nil, Page{Title: "Home"}); err != nil {
		t.Fatalf("WritePage(nil fragment) error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), "<title>Home | TextData</title>") {
		t.Fatalf("body missing composed title: %q", rr.Body.String())
	}
}

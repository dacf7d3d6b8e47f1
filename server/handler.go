package server

import (
	"log"
	"net/http"
	"sync/atomic"

	"notediff.znkr.io/diff"
	"notediff.znkr.io/render"
)

type handler struct {
	snap atomic.Pointer[Snapshot]
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	snap := h.snap.Load()

	switch req.Method {
	case http.MethodGet:
	case http.MethodHead:
	default:
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	if req.URL.EscapedPath() != "/" {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		if req.Method == http.MethodGet {
			w.Write([]byte("not found"))
		}
		return
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	if req.Method == http.MethodHead {
		return
	}

	res := diff.Compute(snap.OldText, snap.NewText)
	b, err := render.HTML(res, snap.OldName, snap.NewName)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		log.Printf("failed to serve diff: %v", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

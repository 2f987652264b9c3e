// Package devserver is the local preview server: static files with live reload
// pushed over a websocket whenever watched sources change.
package devserver

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const notFoundBody = "<h1>404 - File Not Found</h1>"

// FileServer serves Root with the dev MIME table and optional reload injection.
type FileServer struct {
	Root       string
	ReloadPort int
	LiveReload bool
}

func (s *FileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = "/index.html"
	}
	file := filepath.Join(s.Root, filepath.FromSlash(strings.TrimPrefix(name, "/")))

	content, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isDirErr(file) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(notFoundBody))
			return
		}
		log.Printf("[ERROR] devserver read %s: %v", file, err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	ctype := ContentType(file, content)
	if s.LiveReload && strings.EqualFold(filepath.Ext(file), ".html") {
		content = InjectReload(content, s.ReloadPort)
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(content)
	}
}

func isDirErr(file string) bool {
	fi, err := os.Stat(file)
	return err == nil && fi.IsDir()
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"notediff.znkr.io/server"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve <old> <new>",
	Short: "Serve the diff as a web page and reload it when the documents change",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldPath, newPath := args[0], args[1]

		snap, err := loadSnapshot(oldPath, newPath)
		if err != nil {
			return err
		}

		srv, err := server.Run(serveFlags.addr, snap)
		if err != nil {
			return err
		}
		defer srv.Shutdown(context.Background())
		log.Printf("Now serving at http://%s, press Ctrl-C to shut down", serveFlags.addr)

		// Watch the parent directories rather than the files: most editors
		// replace files on save, which would silently drop a watch pointing
		// at the file itself.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting watcher: %v", err)
		}
		defer watcher.Close()
		for _, dir := range watchDirs(oldPath, newPath) {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %v", dir, err)
			}
		}

		// Setup signals to react to Ctrl-C.
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)

		for {
			select {
			case event := <-watcher.Events:
				// Absolutely no need to react to chmod.
				if event.Has(fsnotify.Chmod) {
					continue
				}
				if !watchedFile(event.Name, oldPath, newPath) {
					continue
				}
				snap, err := loadSnapshot(oldPath, newPath)
				if err != nil {
					log.Printf("reloading documents: %v", err)
					continue
				}
				srv.ReplaceSnapshot(snap)
				log.Printf("Reloaded after change to %v", event.Name)
			case err := <-watcher.Errors:
				log.Printf("watching documents: %v", err)
			case err := <-srv.Error():
				return err
			case <-sigint:
				log.Print("Shutting down")
				return nil
			}
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "localhost:8080", "address to serve on")
}

func loadSnapshot(oldPath, newPath string) (*server.Snapshot, error) {
	oldText, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, fmt.Errorf("reading old document: %v", err)
	}
	newText, err := os.ReadFile(newPath)
	if err != nil {
		return nil, fmt.Errorf("reading new document: %v", err)
	}
	return &server.Snapshot{
		OldName: filepath.Base(oldPath),
		NewName: filepath.Base(newPath),
		OldText: string(oldText),
		NewText: string(newText),
	}, nil
}

func watchDirs(paths ...string) []string {
	var dirs []string
	for _, p := range paths {
		dir := filepath.Dir(p)
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func watchedFile(name string, paths ...string) bool {
	for _, p := range paths {
		if filepath.Clean(name) == filepath.Clean(p) {
			return true
		}
	}
	return false
}

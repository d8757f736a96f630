/*
embstudio is a thin command-line demonstration of the app package's command
surface: load or create a pattern, undo/redo its last action, save it, and
print the document directory, against the local filesystem. It exists to exercise app.Service
end-to-end; a real deployment drives the same Service through an IPC
dispatcher instead of flags.
*/
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/niusia-ua/embroidery-studio/app"
	"github.com/niusia-ua/embroidery-studio/registry"
)

var (
	loadPath   = flag.String("load", "", "Load and print the pattern at this path")
	createNew  = flag.Bool("create", false, "Create a new, empty default-sized pattern")
	savePath   = flag.String("save-as", "", "Save the loaded/created pattern to this path")
	undo       = flag.Bool("undo", false, "Undo the pattern's most recent action before saving")
	redo       = flag.Bool("redo", false, "Redo the pattern's most recently undone action before saving")
	showDocDir = flag.Bool("doc-dir", false, "Print the application document directory and exit")
)

// logSink is an actions.EventSink that logs every emitted event; a real
// dispatcher forwards these to a frontend or IPC channel instead.
type logSink struct{}

func (logSink) Emit(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	log.Printf("event %s: %s", event, data)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	svc := app.NewService(app.NewFileStorage())

	if *showDocDir {
		dir, err := svc.AppDocumentDir()
		if err != nil {
			log.Fatalf("embstudio: %v", err)
		}
		fmt.Println(dir)
		return
	}

	var key registry.PatternKey
	switch {
	case *loadPath != "":
		k, proj, err := svc.LoadPattern(ctx, *loadPath)
		if err != nil {
			log.Fatalf("embstudio: load %q: %v", *loadPath, err)
		}
		key = k
		log.Printf("loaded %q: %dx%d stitches, %d palette items",
			*loadPath, proj.Pattern.Properties.Width, proj.Pattern.Properties.Height, len(proj.Pattern.Palette))
	case *createNew:
		k, proj, err := svc.CreatePattern(0, 0)
		if err != nil {
			log.Fatalf("embstudio: create: %v", err)
		}
		key = k
		log.Printf("created %q: %dx%d", proj.FilePath, proj.Pattern.Properties.Width, proj.Pattern.Properties.Height)
	default:
		usage()
		os.Exit(2)
	}

	sink := logSink{}
	if *undo {
		if err := svc.Undo(key, sink); err != nil {
			log.Fatalf("embstudio: undo: %v", err)
		}
	}
	if *redo {
		if err := svc.Redo(key, sink); err != nil {
			log.Fatalf("embstudio: redo: %v", err)
		}
	}

	if *savePath != "" {
		if err := svc.SavePattern(ctx, key, *savePath); err != nil {
			log.Fatalf("embstudio: save %q: %v", *savePath, err)
		}
		log.Printf("saved to %q", *savePath)
	}
}

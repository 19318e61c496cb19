package vimwiki2html_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	vimwiki2html "github.com/alnah/go-vimwiki2html"
)

func ExampleConverter_Convert() {
	wiki, err := os.MkdirTemp("", "wiki")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(wiki) }()

	page := filepath.Join(wiki, "Tasks.md")
	if err := os.WriteFile(page, []byte("%title Today\n- [Inbox](inbox)\n"), 0o644); err != nil {
		log.Fatal(err)
	}

	result, err := vimwiki2html.NewConverter().Convert(context.Background(), vimwiki2html.Input{
		Syntax:    vimwiki2html.SyntaxMarkdown,
		InputFile: page,
		OutputDir: filepath.Join(wiki, "html"),
		Options:   vimwiki2html.DefaultOptions(),
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(filepath.Base(result.OutputPath), result.UsedDefaultTemplate)
	// Output: Tasks.html true
}

func ExampleParseCSSFiles() {
	files, err := vimwiki2html.ParseCSSFiles("/home/me/style.css:css/style.css,/home/me/print.css")
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range files {
		fmt.Printf("%s -> %q\n", f.Source, f.Dest)
	}
	// Output:
	// /home/me/style.css -> "css/style.css"
	// /home/me/print.css -> ""
}

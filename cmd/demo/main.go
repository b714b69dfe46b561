// Command demo exercises every gateway operation from the terminal.
//
// Set GEMINI_API_KEY in the environment or a .env file, then:
//
//	demo text "Why is the sky blue?"
//	demo structured "Describe the book Dune"
//	demo image "a lighthouse at dawn" 2
//	demo vision photo.jpg "What is in this picture?"
//	demo visionjson photo.jpg "List the objects in this picture as JSON"
//	demo edit photo.jpg "Make it look like a watercolor painting"
//	demo palette "sunset over the ocean"
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hueworks/aigate"
	"github.com/hueworks/aigate/gemini"
	"github.com/hueworks/aigate/schema"
)

func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	gw := gemini.New(gemini.FromEnv())

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "text":
		err = runText(ctx, gw, args)
	case "structured":
		err = runStructured(ctx, gw, args)
	case "image":
		err = runImage(ctx, gw, args)
	case "vision":
		err = runVision(ctx, gw, args, false)
	case "visionjson":
		err = runVision(ctx, gw, args, true)
	case "edit":
		err = runEdit(ctx, gw, args)
	case "palette":
		err = runPalette(ctx, gw, args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: demo <text|structured|image|vision|visionjson|edit|palette> [args]")
}

func runText(ctx context.Context, gw *gemini.Gateway, args []string) error {
	text, err := gw.GenerateText(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func runStructured(ctx context.Context, gw *gemini.Gateway, args []string) error {
	desc := schema.Object().
		Field("title", schema.String().Required()).
		Field("author", schema.String().Required()).
		Field("year", schema.Int()).
		MustBuild()

	value, err := gw.GenerateStructuredText(ctx, strings.Join(args, " "), desc)
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

func runImage(ctx context.Context, gw *gemini.Gateway, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("image requires a prompt")
	}
	count := 1
	if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
		count = n
		args = args[:len(args)-1]
	}

	uris, err := gw.GenerateImage(ctx, strings.Join(args, " "), aigate.WithImageCount(count))
	if err != nil {
		return err
	}
	for _, uri := range uris {
		path, err := saveDataURI(uri)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func runVision(ctx context.Context, gw *gemini.Gateway, args []string, asJSON bool) error {
	if len(args) < 2 {
		return fmt.Errorf("vision requires an image path and a prompt")
	}
	img, err := aigate.ImageFromFile(args[0])
	if err != nil {
		return err
	}

	result, err := gw.GenerateTextWithImage(ctx, strings.Join(args[1:], " "), img, asJSON)
	if err != nil {
		return err
	}
	switch result.Kind {
	case aigate.KindStructuredResult:
		pretty, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))
	case aigate.KindRawResult:
		fmt.Printf("model did not return JSON, raw response:\n%s\n", result.RawResponse)
	default:
		fmt.Println(result.Text)
	}
	return nil
}

func runEdit(ctx context.Context, gw *gemini.Gateway, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("edit requires an image path and a prompt")
	}
	img, err := aigate.ImageFromFile(args[0])
	if err != nil {
		return err
	}

	result, err := gw.EditImage(ctx, strings.Join(args[1:], " "), img)
	if err != nil {
		return err
	}
	if result.Text != "" {
		fmt.Println(result.Text)
	}
	path, err := saveDataURI(result.Image)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runPalette(ctx context.Context, gw *gemini.Gateway, args []string) error {
	colors, err := gw.GenerateColorPalette(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, color := range colors {
		fmt.Printf("%-24s %s\n", color.Name, color.Hex)
	}
	return nil
}

// saveDataURI decodes a data-URI and writes it to a uuid-named file with
// an extension matching the MIME type.
func saveDataURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", fmt.Errorf("not a data-URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", fmt.Errorf("malformed data-URI")
	}

	ext := ".png"
	if strings.HasPrefix(meta, "image/jpeg") {
		ext = ".jpg"
	} else if strings.HasPrefix(meta, "image/webp") {
		ext = ".webp"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}
	path := uuid.New().String() + ext
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

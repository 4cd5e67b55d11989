// Command example loads tools from a Toolbox server and invokes one of
// them. It reads TOOLBOX_URL (and optionally TOOLBOX_TOOLSET and
// TOOLBOX_TOOL) from the environment or a .env file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/spetersoncode/toolbox/client"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	url := os.Getenv("TOOLBOX_URL")
	if url == "" {
		url = "http://localhost:5000"
	}

	c := client.New(url)

	tools, err := c.LoadToolset(ctx, os.Getenv("TOOLBOX_TOOLSET"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d tools from %s\n", len(tools), url)
	for _, t := range tools {
		fmt.Printf("  %s: %s\n", t.Name(), t.Description())
	}

	name := os.Getenv("TOOLBOX_TOOL")
	if name == "" {
		return
	}

	t, err := c.LoadTool(ctx, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load error: %v\n", err)
		os.Exit(1)
	}

	result, err := t.Invoke(ctx, map[string]any{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invoke error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

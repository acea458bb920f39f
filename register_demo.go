// +build ignore

package main

import (
	"fmt"
	"os"

	"toolbelt-go/pkg/registrar"
)

func main() {
	dir, err := os.MkdirTemp("", "toolbelt-demo")
	if err != nil {
		fmt.Printf("temp dir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	store, err := registrar.NewStore(dir)
	if err != nil {
		fmt.Printf("store error: %v\n", err)
		return
	}
	reg := registrar.New(store)

	// Test 1: Basic registration with URL and derived host
	def1, err := reg.Register(registrar.Request{
		Name:    "stock_price",
		Purpose: "Get the latest stock price for a ticker symbol",
		APIURL:  "https://example-finance.p.rapidapi.com/price",
	})
	if err != nil {
		fmt.Printf("Test 1 error: %v\n", err)
	} else {
		fmt.Println("Test 1 (Basic registration):")
		fmt.Printf("name: %s\n", def1.Name)
		fmt.Printf("host: %s\n", def1.APIHost)
		fmt.Printf("key env: %s\n\n", def1.APIKeyEnv)
	}

	// Test 2: No URL stores the placeholder for later editing
	def2, err := reg.Register(registrar.Request{
		Name:      "fun_fact",
		Purpose:   "Fetch a random fun fact",
		APIKeyEnv: "FACTS_API_KEY",
	})
	if err != nil {
		fmt.Printf("Test 2 error: %v\n", err)
	} else {
		fmt.Println("Test 2 (Placeholder URL):")
		fmt.Printf("url: %s\n", def2.APIURL)
		fmt.Printf("host: %s\n\n", def2.APIHost)
	}

	// Test 3: Duplicate name is rejected
	_, err = reg.Register(registrar.Request{
		Name:    "stock_price",
		Purpose: "A second stock tool",
	})
	fmt.Println("Test 3 (Duplicate name):")
	fmt.Printf("error: %v\n\n", err)

	// Test 4: Invalid name is rejected before anything is written
	_, err = reg.Register(registrar.Request{
		Name:    "Stock Price!",
		Purpose: "Bad name",
	})
	fmt.Println("Test 4 (Invalid name):")
	fmt.Printf("error: %v\n\n", err)

	// Test 5: Reload sees every definition in registration order
	defs, err := store.Load()
	if err != nil {
		fmt.Printf("Test 5 error: %v\n", err)
	} else {
		fmt.Println("Test 5 (Reload from disk):")
		for i, def := range defs {
			fmt.Printf("%d. %s (%s)\n", i+1, def.Name, def.APIHost)
		}
		fmt.Printf("Total: %d tools registered\n", len(defs))
	}
}

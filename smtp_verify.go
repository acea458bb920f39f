//go:build ignore
// +build ignore

package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// This is a test file to verify SMTP credentials are working properly.
// Run with: go run smtp_verify.go
// It connects, upgrades to TLS, and authenticates. No email is sent.

func main() {
	// Pick up GMAIL_USER / GMAIL_PASS from .env if present
	_ = godotenv.Load()

	host := envOr("SMTP_HOST", "smtp.gmail.com")
	port := envOr("SMTP_PORT", "587")
	user := os.Getenv("GMAIL_USER")
	pass := os.Getenv("GMAIL_PASS")

	if user == "" || pass == "" {
		fmt.Println("❌ GMAIL_USER and GMAIL_PASS must be set (in the environment or .env)")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)

	fmt.Printf("Connecting to %s...\n", addr)
	conn, err := net.DialTimeout("tcp", addr, 15*time.Second)
	if err != nil {
		fmt.Printf("❌ Failed to connect: %v\n", err)
		os.Exit(1)
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		fmt.Printf("❌ SMTP handshake failed: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	fmt.Println("Upgrading to TLS...")
	if ok, _ := client.Extension("STARTTLS"); !ok {
		fmt.Println("❌ Server does not support STARTTLS")
		os.Exit(1)
	}
	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		fmt.Printf("❌ STARTTLS failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Authenticating as %s...\n", user)
	auth := smtp.PlainAuth("", user, pass, host)
	if err := client.Auth(auth); err != nil {
		fmt.Printf("❌ Authentication failed: %v\n", err)
		fmt.Println("For Gmail, use an app password: https://myaccount.google.com/apppasswords")
		os.Exit(1)
	}

	_ = client.Quit()

	fmt.Println("\n✅ SMTP credential test passed! The send_email tool should work now.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dorlv/go-static-http/httpd"
)

var (
	addr    = flag.String("addr", "0.0.0.0", "address to listen on")
	port    = flag.String("port", "80", "port number")
	root    = flag.String("root", "webroot", "document root directory")
	logFile = flag.String("log", "", "log file path (default stderr)")
)

func validatePort(port string) error {
	p, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %v", port, err)
	}
	if p <= 0 || p >= 65536 {
		return fmt.Errorf("port %d out of range", p)
	}
	return nil
}

func validateWebRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("web root %q: %v", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("web root %q is not a directory", root)
	}
	return nil
}

func main() {
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("C failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := validatePort(*port); err != nil {
		log.Fatalf("C %v", err)
	}
	if err := validateWebRoot(*root); err != nil {
		log.Fatalf("C %v", err)
	}

	server := httpd.NewServer(httpd.Config{
		Addr:    *addr,
		Port:    *port,
		WebRoot: *root,
	})

	fmt.Printf("Server is running on port %s...\n", *port)
	if err := server.Start(); err != nil {
		log.Fatalf("C server crash: %v", err)
	}
}

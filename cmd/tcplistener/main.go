package main

import (
	"fmt"
	"log"
	"net"

	"github.com/nhdewitt/jwp-dispatch/internal/request"
	"github.com/spf13/pflag"
)

func main() {
	port := pflag.IntP("port", "p", 42069, "port to listen on")
	pflag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("error listening: %v", err.Error())
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", addr)
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Fatalf("error accepting connection: %v", err)
		}
		log.Println("Connection accepted:", c.RemoteAddr())

		req, err := request.RequestFromReader(c)
		if err != nil {
			log.Printf("error parsing request: %v", err)
			c.Close()
			continue
		}

		fmt.Println("Request line:")
		fmt.Printf("- Method: %s\n", req.Method())
		fmt.Printf("- Path: %s\n", req.Path())
		fmt.Printf("- Version: %s\n", req.Version())
		fmt.Println("Headers:")
		h := req.Headers()
		for _, k := range h.Keys() {
			fmt.Printf("- %s: %s\n", k, h[k])
		}
		if body, ok := req.Body(); ok {
			fmt.Println("Body:")
			fmt.Println(body)
		}
		c.Close()
		fmt.Println("Connection to ", c.RemoteAddr(), "closed")
	}
}

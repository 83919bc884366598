package main

import (
	"fmt"
	"os"

	"github.com/tony-montemuro/httpmsg"
)

func main() {
	var req httpmsg.Request
	req.Version = 11
	req.SetTarget("/")
	req.Set("Host", "example.com")
	req.Set("User-Agent", "msgcat")
	req.Body = httpmsg.StringBody("hello\n")

	if err := req.SetMethod(httpmsg.VerbPost); err != nil {
		fmt.Fprintf(os.Stderr, "could not set method: %s", err.Error())
		os.Exit(1)
	}

	if err := req.Prepare(httpmsg.ConnectionClose); err != nil {
		fmt.Fprintf(os.Stderr, "could not prepare request: %s", err.Error())
		os.Exit(1)
	}

	wire, err := req.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not marshal request: %s", err.Error())
		os.Exit(1)
	}

	os.Stdout.Write(wire)
}

package main

import (
	"flag"
	"fmt"
	"os"

	"tickwork/host/console"
	"tickwork/host/serial"
)

var (
	device   = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud     = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	checksum = flag.Bool("checksum", true, "Append CRC16 checksum to sent lines")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to %s...\n", *device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()
	fmt.Println("Connected. Enter commands ('quit' to exit).")

	client := console.NewClient(port)
	client.SetChecksum(*checksum)

	if err := client.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

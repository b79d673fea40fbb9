// Package main provides the Axon ML Framework CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/axon-ml/axon/hooks"

	"github.com/axon-ml/axon/backend/webgpu"
)

const version = "v0.0.1-dev"

// probeReport is a portable summary of accelerator availability on this host.
type probeReport struct {
	Backend           string `json:"backend"`
	Available         bool   `json:"available"`
	PlatformSupported bool   `json:"platform_supported"`
	Usable            bool   `json:"usable"`
	Adapter           string `json:"adapter,omitempty"`
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Axon ML Framework %s\n", version)
			return
		case "probe":
			os.Exit(probe())
		}
	}

	fmt.Println("Axon ML Framework - Accelerator Hooks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  probe      Report accelerator availability as JSON")
}

// probe reports accelerator status and returns the process exit code: 0 when
// the backend is usable, 1 otherwise.
func probe() int {
	h := hooks.Get(hooks.WebGPU)

	rep := probeReport{
		Backend:           hooks.WebGPU.String(),
		Available:         h.Available(),
		PlatformSupported: h.PlatformSupported(),
	}
	rep.Usable = rep.Available && rep.PlatformSupported
	if rep.Available {
		rep.Adapter = webgpu.AdapterDescription()
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe: %v\n", err)
		return 1
	}
	fmt.Println(string(out))

	if !rep.Usable {
		return 1
	}
	return 0
}

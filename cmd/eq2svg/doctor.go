package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	eq2svg "github.com/alnah/go-eq2svg"
)

// Injectable for tests; exec.LookPath and a real version probe in production.
var (
	lookPath    = exec.LookPath
	toolVersion = probeToolVersion
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string     `json:"status"` // "ready" or "errors"
	Compiler  toolInfo   `json:"compiler"`
	Converter toolInfo   `json:"converter"`
	System    systemInfo `json:"system"`
	Errors    []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for one external tool.
type toolInfo struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = ready, 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(eq2svg.DefaultCompiler, eq2svg.DefaultConverter)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(compiler, converter string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	result.Compiler = checkTool(compiler)
	if !result.Compiler.Found {
		result.Errors = append(result.Errors, fmt.Sprintf("%s not found on PATH (install it to compile equations)", compiler))
	}

	result.Converter = checkTool(converter)
	if !result.Converter.Found {
		result.Errors = append(result.Errors, fmt.Sprintf("%s not found on PATH (part of poppler-utils)", converter))
	}

	result.System.TempWritable = checkTempWritable()
	if !result.System.TempWritable {
		result.Errors = append(result.Errors, "temp directory is not writable")
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	}
	return result
}

// checkTool resolves a tool on PATH and probes its version.
func checkTool(name string) toolInfo {
	info := toolInfo{Name: name}
	path, err := lookPath(name)
	if err != nil {
		return info
	}
	info.Found = true
	info.Path = path
	info.Version = toolVersion(name)
	return info
}

// probeToolVersion runs "<tool> --version" and returns the first line.
func probeToolVersion(name string) string {
	out, err := exec.Command(name, "--version").Output() // #nosec G204 -- tool name is a known binary
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line
}

// checkTempWritable verifies a file can be created in the temp directory.
func checkTempWritable() bool {
	f, err := os.CreateTemp("", "eq2svg-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// printDoctorResult writes a human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintln(w, "eq2svg doctor")
	fmt.Fprintln(w)

	for _, tool := range []toolInfo{result.Compiler, result.Converter} {
		if tool.Found {
			detail := tool.Path
			if tool.Version != "" {
				detail = fmt.Sprintf("%s (%s)", tool.Path, tool.Version)
			}
			fmt.Fprintf(w, "  %s\n", successLine(fmt.Sprintf("%s: %s", tool.Name, detail)))
		} else {
			fmt.Fprintf(w, "  %s\n", errorLine(fmt.Sprintf("%s: not found", tool.Name)))
		}
	}

	if result.System.TempWritable {
		fmt.Fprintf(w, "  %s\n", successLine("temp directory writable"))
	} else {
		fmt.Fprintf(w, "  %s\n", errorLine("temp directory not writable"))
	}

	fmt.Fprintln(w)
	if result.Status == "ready" {
		fmt.Fprintln(w, styleSuccess.Render("Ready."))
	} else {
		fmt.Fprintf(w, "%s\n", styleError.Render(fmt.Sprintf("%d problem(s) found.", len(result.Errors))))
	}
}

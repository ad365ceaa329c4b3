package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// Notes:
// - These tests swap the package-level lookPath/toolVersion hooks and must
//   not run in parallel with each other.

func stubTools(t *testing.T, paths map[string]string) {
	t.Helper()
	origLook, origVersion := lookPath, toolVersion
	t.Cleanup(func() {
		lookPath, toolVersion = origLook, origVersion
	})
	lookPath = func(name string) (string, error) {
		if p, ok := paths[name]; ok {
			return p, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
	toolVersion = func(name string) string { return name + " 0.test" }
}

func TestRunDoctorAllToolsPresent(t *testing.T) {
	stubTools(t, map[string]string{
		"tectonic":   "/usr/bin/tectonic",
		"pdftocairo": "/usr/bin/pdftocairo",
	})

	result := runDoctor("tectonic", "pdftocairo")

	if result.Status != "ready" {
		t.Errorf("Status = %q, want %q (errors: %v)", result.Status, "ready", result.Errors)
	}
	if !result.Compiler.Found || result.Compiler.Path != "/usr/bin/tectonic" {
		t.Errorf("Compiler = %+v, want found at /usr/bin/tectonic", result.Compiler)
	}
	if result.Compiler.Version != "tectonic 0.test" {
		t.Errorf("Compiler.Version = %q, want %q", result.Compiler.Version, "tectonic 0.test")
	}
	if !result.Converter.Found {
		t.Errorf("Converter = %+v, want found", result.Converter)
	}
	if !result.System.TempWritable {
		t.Error("TempWritable = false, want true")
	}
}

func TestRunDoctorMissingTool(t *testing.T) {
	stubTools(t, map[string]string{"tectonic": "/usr/bin/tectonic"})

	result := runDoctor("tectonic", "pdftocairo")

	if result.Status != "errors" {
		t.Errorf("Status = %q, want %q", result.Status, "errors")
	}
	if result.Converter.Found {
		t.Errorf("Converter = %+v, want not found", result.Converter)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "pdftocairo") {
		t.Errorf("Errors = %v, want one pdftocairo entry", result.Errors)
	}
}

func TestRunDoctorCmdExitCodes(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		stubTools(t, map[string]string{
			"tectonic":   "/usr/bin/tectonic",
			"pdftocairo": "/usr/bin/pdftocairo",
		})
		env, stdout, _ := testEnv()
		if got := runDoctorCmd(nil, env); got != ExitSuccess {
			t.Errorf("exit = %d, want %d", got, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "Ready.") {
			t.Errorf("stdout = %q, want ready notice", stdout.String())
		}
	})

	t.Run("errors", func(t *testing.T) {
		stubTools(t, map[string]string{})
		env, _, _ := testEnv()
		if got := runDoctorCmd(nil, env); got != ExitGeneral {
			t.Errorf("exit = %d, want %d", got, ExitGeneral)
		}
	})
}

func TestRunDoctorCmdJSON(t *testing.T) {
	stubTools(t, map[string]string{
		"tectonic":   "/usr/bin/tectonic",
		"pdftocairo": "/usr/bin/pdftocairo",
	})

	env, stdout, _ := testEnv()
	if got := runDoctorCmd([]string{"--json"}, env); got != ExitSuccess {
		t.Errorf("exit = %d, want %d", got, ExitSuccess)
	}

	var result doctorResult
	dec := json.NewDecoder(bytes.NewReader(stdout.Bytes()))
	if err := dec.Decode(&result); err != nil {
		t.Fatalf("decoding JSON output: %v\n%s", err, stdout.String())
	}
	if result.Status != "ready" {
		t.Errorf("Status = %q, want %q", result.Status, "ready")
	}
	if result.Compiler.Name != "tectonic" {
		t.Errorf("Compiler.Name = %q, want %q", result.Compiler.Name, "tectonic")
	}
}

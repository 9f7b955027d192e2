package utils

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

// captureLog redirects the standard logger while fn runs and returns what
// was written.
func captureLog(fn func()) string {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	oldFlags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(oldFlags)
	}()
	fn()
	return buf.String()
}

func TestLoggerDebugRespectsVerbose(t *testing.T) {
	logger := GetLogger()
	defer logger.SetVerbose(false)

	logger.SetVerbose(false)
	quiet := captureLog(func() {
		logger.Debug("hidden %s", "message")
	})
	if strings.Contains(quiet, "hidden message") {
		t.Errorf("Debug output should be suppressed without verbose, got: %q", quiet)
	}

	logger.SetVerbose(true)
	loud := captureLog(func() {
		logger.Debug("shown %s", "message")
	})
	if !strings.Contains(loud, "[DEBUG] shown message") {
		t.Errorf("Debug output should appear with verbose, got: %q", loud)
	}
}

func TestLoggerLevels(t *testing.T) {
	logger := GetLogger()

	out := captureLog(func() {
		logger.Info("info line")
		logger.Warn("warn line")
		logger.Error("error line")
	})

	for _, want := range []string{"[INFO] info line", "[WARN] warn line", "[ERROR] error line"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got: %q", want, out)
		}
	}
}

func TestPackageLevelConvenienceFuncs(t *testing.T) {
	SetVerboseMode(true)
	defer SetVerboseMode(false)

	if !GetLogger().IsVerbose() {
		t.Error("SetVerboseMode(true) should enable verbose on the global logger")
	}

	out := captureLog(func() {
		Warnf("convenience %d", 7)
	})
	if !strings.Contains(out, "[WARN] convenience 7") {
		t.Errorf("Expected package-level Warnf output, got: %q", out)
	}
}

func TestGetLoggerReturnsSingleton(t *testing.T) {
	a := GetLogger()
	b := GetLogger()
	if a != b {
		t.Error("GetLogger should return the same instance")
	}
}

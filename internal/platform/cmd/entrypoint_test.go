package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Locale string `env:"CMD_TEST_LOCALE" envDefault:"en-US"`
	Policy string `env:"CMD_TEST_POLICY" envDefault:"fail"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("NUMBERGUESS_CMD_TEST_LOCALE", "id-ID")
	t.Setenv("NUMBERGUESS_CMD_TEST_POLICY", "reprompt")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale")
	fs.StringVar(&cfg.Policy, "on-invalid", cfg.Policy, "policy")

	if err := ParseArgs(fs, []string{"-locale", "en-US"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected flag value for locale, got %q", cfg.Locale)
	}
	if cfg.Policy != "reprompt" {
		t.Fatalf("expected env policy, got %q", cfg.Policy)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceGuess, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("NUMBERGUESS_OTEL_ENDPOINT", "")
	want := errors.New("run failed")

	called := false
	err := RunWithTelemetry(context.Background(), ServiceGuess, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

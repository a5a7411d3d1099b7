// Package guess parses guess command flags and plays one game over the
// provided streams.
package guess

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/louisbranch/numberguess/internal/guess"
	entrypoint "github.com/louisbranch/numberguess/internal/platform/cmd"
	"github.com/louisbranch/numberguess/internal/platform/i18n/catalog"
	"github.com/louisbranch/numberguess/internal/random"
)

// Config holds guess command configuration.
type Config struct {
	Locale    string `env:"LOCALE" envDefault:"en-US"`
	Seed      int64  `env:"SEED" envDefault:"0"`
	OnInvalid string `env:"ON_INVALID" envDefault:"fail"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Message locale (en-US, id-ID)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.OnInvalid, "on-invalid", cfg.OnInvalid, "What to do with non-numeric input (fail, reprompt)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := guess.ParsePolicy(cfg.OnInvalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays one game reading guesses from in and writing to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	policy, err := guess.ParsePolicy(cfg.OnInvalid)
	if err != nil {
		return err
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGuess, func(ctx context.Context) error {
		bundle := catalog.Default()
		locale := bundle.Resolve(cfg.Locale)
		if locale != cfg.Locale {
			log.Printf("locale %q not available, using %s", cfg.Locale, locale)
		}

		var src random.Source
		if cfg.Seed != 0 {
			src = random.New(cfg.Seed)
		}

		session, err := guess.New(guess.Options{
			In:        in,
			Out:       out,
			Random:    src,
			Printer:   bundle.Printer(locale),
			OnInvalid: policy,
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		log.Printf("session %s started (locale=%s, on_invalid=%s)", session.ID(), locale, policy)

		result, err := session.Run(ctx)
		if err != nil {
			log.Printf("session %s ended after %d guesses: %v", result.SessionID, result.Guesses, err)
			return err
		}
		log.Printf("session %s solved in %d guesses", result.SessionID, result.Guesses)
		return nil
	})
}
